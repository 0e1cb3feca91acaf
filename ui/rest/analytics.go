package rest

import (
	domainAnalytics "github.com/AzielCF/az-learn/domains/analytics"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Analytics struct {
	Service domainAnalytics.IAnalyticsUsecase
}

type trackInteractionRequest struct {
	UserMessage string `json:"userMessage" form:"userMessage"`
	AIResponse  string `json:"aiResponse" form:"aiResponse"`
}

func InitRestAnalytics(app fiber.Router, service domainAnalytics.IAnalyticsUsecase) Analytics {
	rest := Analytics{Service: service}
	app.Get("/users/:uid/analytics", rest.GetAnalytics)
	app.Get("/users/:uid/analytics/summary", rest.GetSummary)
	app.Post("/users/:uid/analytics/init", rest.Initialize)
	app.Post("/users/:uid/analytics/interactions", rest.TrackInteraction)

	return rest
}

// GetAnalytics serves ?variant=live|historical (live by default) over ?days=.
func (handler *Analytics) GetAnalytics(c *fiber.Ctx) error {
	uid := c.Params("uid")
	days := c.QueryInt("days", domainAnalytics.DefaultRangeDays)

	var (
		result domainAnalytics.Result
		err    error
	)
	switch domainAnalytics.Variant(c.Query("variant", string(domainAnalytics.VariantLive))) {
	case domainAnalytics.VariantLive:
		result, err = handler.Service.GetChatsAnalytics(c.UserContext(), uid, days)
	case domainAnalytics.VariantHistorical:
		result, err = handler.Service.GetHistoricalAnalytics(c.UserContext(), uid, days)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "variant must be live or historical",
		})
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Analytics retrieved",
		Results: result,
	})
}

func (handler *Analytics) GetSummary(c *fiber.Ctx) error {
	summary, err := handler.Service.GetSummary(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Analytics summary retrieved",
		Results: summary,
	})
}

func (handler *Analytics) Initialize(c *fiber.Ctx) error {
	err := handler.Service.InitializeAnalytics(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Analytics initialized",
	})
}

func (handler *Analytics) TrackInteraction(c *fiber.Ctx) error {
	var request trackInteractionRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	err := handler.Service.TrackInteraction(c.UserContext(), c.Params("uid"), request.UserMessage, request.AIResponse)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Interaction tracked",
	})
}
