package rest

import (
	domainMessage "github.com/AzielCF/az-learn/domains/message"
	pkgError "github.com/AzielCF/az-learn/pkg/error"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Message struct {
	Service domainMessage.IMessageUsecase
}

func InitRestMessage(app fiber.Router, service domainMessage.IMessageUsecase) Message {
	rest := Message{Service: service}
	app.Get("/users/:uid/messages/stats", rest.GetStats)
	app.Post("/users/:uid/messages/increment", rest.Increment)

	return rest
}

func (handler *Message) GetStats(c *fiber.Ctx) error {
	stats, err := handler.Service.GetMessageStats(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Message stats retrieved",
		Results: stats,
	})
}

// Increment answers 422 with the unchanged stats once the quota is used up.
func (handler *Message) Increment(c *fiber.Ctx) error {
	stats, err := handler.Service.IncrementMessageCount(c.UserContext(), c.Params("uid"))
	if pkgError.IsLimitReached(err) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ResponseData{
			Status:  422,
			Code:    "LIMIT_REACHED",
			Message: err.Error(),
			Results: stats,
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Message counted",
		Results: stats,
	})
}
