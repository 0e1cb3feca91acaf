package rest

import (
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InitRestMonitoring exposes the prometheus registry used by the cache metrics.
func InitRestMonitoring(app fiber.Router) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
		Status:  400,
		Code:    "BAD_REQUEST",
		Message: err.Error(),
	})
}
