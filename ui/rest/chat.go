package rest

import (
	domainChat "github.com/AzielCF/az-learn/domains/chat"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type ChatHistory struct {
	Service domainChat.IChatHistoryUsecase
}

func InitRestChatHistory(app fiber.Router, service domainChat.IChatHistoryUsecase) ChatHistory {
	rest := ChatHistory{Service: service}
	app.Get("/users/:uid/chats/:chatId/history", rest.GetHistory)
	app.Post("/users/:uid/chats/:chatId/history", rest.AppendMessages)
	app.Delete("/users/:uid/chats/:chatId/history", rest.ClearHistory)

	return rest
}

func (handler *ChatHistory) GetHistory(c *fiber.Ctx) error {
	history, ok := handler.Service.GetHistory(c.UserContext(), c.Params("uid"), c.Params("chatId"))
	if !ok {
		history = []domainChat.Message{}
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat history retrieved",
		Results: fiber.Map{"messages": history, "cached": ok},
	})
}

func (handler *ChatHistory) AppendMessages(c *fiber.Ctx) error {
	var messages []domainChat.Message
	if err := c.BodyParser(&messages); err != nil {
		return badRequest(c, err)
	}

	history := handler.Service.AppendMessages(c.UserContext(), c.Params("uid"), c.Params("chatId"), messages...)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat history updated",
		Results: history,
	})
}

func (handler *ChatHistory) ClearHistory(c *fiber.Ctx) error {
	handler.Service.ClearHistory(c.UserContext(), c.Params("uid"), c.Params("chatId"))

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat history cleared",
	})
}
