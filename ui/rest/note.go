package rest

import (
	domainNote "github.com/AzielCF/az-learn/domains/note"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Note struct {
	Service domainNote.INoteUsecase
}

func InitRestNote(app fiber.Router, service domainNote.INoteUsecase) Note {
	rest := Note{Service: service}
	app.Get("/users/:uid/notes", rest.GetNotes)
	app.Post("/users/:uid/notes", rest.SaveNote)
	app.Patch("/users/:uid/notes/:id", rest.UpdateNote)
	app.Delete("/users/:uid/notes/:id", rest.DeleteNote)

	return rest
}

func (handler *Note) GetNotes(c *fiber.Ctx) error {
	notes, err := handler.Service.GetNotes(c.UserContext(), c.Params("uid"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Notes retrieved",
		Results: notes,
	})
}

func (handler *Note) SaveNote(c *fiber.Ctx) error {
	var request domainNote.SaveNoteRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	note, err := handler.Service.SaveNote(c.UserContext(), c.Params("uid"), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Note saved",
		Results: note,
	})
}

func (handler *Note) UpdateNote(c *fiber.Ctx) error {
	var request domainNote.UpdateNoteRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	err := handler.Service.UpdateNote(c.UserContext(), c.Params("uid"), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Note updated",
	})
}

func (handler *Note) DeleteNote(c *fiber.Ctx) error {
	err := handler.Service.DeleteNote(c.UserContext(), c.Params("uid"), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Note deleted",
	})
}
