package rest

import (
	domainManifesto "github.com/AzielCF/az-learn/domains/manifesto"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Manifesto struct {
	Service domainManifesto.IManifestoUsecase
}

func InitRestManifesto(app fiber.Router, service domainManifesto.IManifestoUsecase) Manifesto {
	rest := Manifesto{Service: service}
	app.Get("/users/:uid/manifesto", rest.GetItems)
	app.Post("/users/:uid/manifesto", rest.SaveItem)
	app.Delete("/users/:uid/manifesto/:id", rest.DeleteItem)

	return rest
}

func (handler *Manifesto) GetItems(c *fiber.Ctx) error {
	items, err := handler.Service.GetManifestoItems(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Manifesto retrieved",
		Results: items,
	})
}

func (handler *Manifesto) SaveItem(c *fiber.Ctx) error {
	var request domainManifesto.SaveItemRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	item, err := handler.Service.SaveManifestoItem(c.UserContext(), c.Params("uid"), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Manifesto item saved",
		Results: item,
	})
}

func (handler *Manifesto) DeleteItem(c *fiber.Ctx) error {
	err := handler.Service.DeleteManifestoItem(c.UserContext(), c.Params("uid"), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Manifesto item deleted",
	})
}
