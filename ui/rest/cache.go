package rest

import (
	domainCache "github.com/AzielCF/az-learn/domains/cache"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(app fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	app.Get("/cache/stats", rest.GetStats)
	app.Post("/cache/clear", rest.ClearCache)
	app.Post("/users/:uid/cache/clear", rest.ClearUserCache)

	return rest
}

func (handler *Cache) GetStats(c *fiber.Ctx) error {
	stats, err := handler.Service.GetStats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats retrieved",
		Results: stats,
	})
}

func (handler *Cache) ClearCache(c *fiber.Ctx) error {
	err := handler.Service.ClearCache(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache cleared successfully",
	})
}

func (handler *Cache) ClearUserCache(c *fiber.Ctx) error {
	err := handler.Service.ClearUserCache(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "User cache cleared successfully",
	})
}
