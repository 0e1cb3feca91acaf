package rest

import (
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Roadmap struct {
	Service domainRoadmap.IRoadmapUsecase
}

func InitRestRoadmap(app fiber.Router, service domainRoadmap.IRoadmapUsecase) Roadmap {
	rest := Roadmap{Service: service}
	app.Get("/users/:uid/roadmaps", rest.GetRoadmaps)
	app.Post("/users/:uid/roadmaps", rest.SaveRoadmap)
	app.Delete("/users/:uid/roadmaps/:id", rest.DeleteRoadmap)

	return rest
}

// GetRoadmaps accepts ?refresh=true to bypass the local cache.
func (handler *Roadmap) GetRoadmaps(c *fiber.Ctx) error {
	roadmaps, err := handler.Service.GetRoadmaps(c.UserContext(), c.Params("uid"), c.QueryBool("refresh", false))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Roadmaps retrieved",
		Results: roadmaps,
	})
}

func (handler *Roadmap) SaveRoadmap(c *fiber.Ctx) error {
	var request domainRoadmap.SaveRoadmapRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	roadmap, err := handler.Service.SaveRoadmap(c.UserContext(), c.Params("uid"), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Roadmap saved",
		Results: roadmap,
	})
}

func (handler *Roadmap) DeleteRoadmap(c *fiber.Ctx) error {
	err := handler.Service.DeleteRoadmap(c.UserContext(), c.Params("uid"), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Roadmap deleted",
	})
}
