package rest

import (
	domainAccess "github.com/AzielCF/az-learn/domains/access"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Access struct {
	Service domainAccess.IAccessUsecase
}

type addFreeAccessRequest struct {
	Emails []string `json:"emails" form:"emails"`
}

func InitRestAccess(app fiber.Router, service domainAccess.IAccessUsecase) Access {
	rest := Access{Service: service}
	app.Get("/access/config", rest.GetConfig)
	app.Get("/access/free", rest.CheckFreeAccess)
	app.Post("/access/free", rest.AddFreeAccess)

	return rest
}

func (handler *Access) GetConfig(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "System config retrieved",
		Results: handler.Service.GetSystemConfig(c.UserContext()),
	})
}

func (handler *Access) CheckFreeAccess(c *fiber.Ctx) error {
	email := c.Query("email")
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Free access checked",
		Results: fiber.Map{"email": email, "free_access": handler.Service.CheckFreeAccess(c.UserContext(), email)},
	})
}

func (handler *Access) AddFreeAccess(c *fiber.Ctx) error {
	var request addFreeAccessRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	err := handler.Service.AddFreeAccess(c.UserContext(), request.Emails...)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Free access granted",
	})
}
