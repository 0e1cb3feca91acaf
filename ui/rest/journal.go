package rest

import (
	domainJournal "github.com/AzielCF/az-learn/domains/journal"
	"github.com/AzielCF/az-learn/domains/remote"
	"github.com/AzielCF/az-learn/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Journal struct {
	Service domainJournal.IJournalUsecase
}

func InitRestJournal(app fiber.Router, service domainJournal.IJournalUsecase) Journal {
	rest := Journal{Service: service}
	app.Get("/users/:uid/journals", rest.ListEntries)
	app.Post("/users/:uid/journals", rest.SaveEntry)
	app.Put("/users/:uid/journals/:id", rest.UpdateEntry)
	app.Delete("/users/:uid/journals/:id", rest.DeleteEntry)

	return rest
}

// ListEntries pages with ?cursor_id=&cursor_created_at=, the id and createdAt
// of the last entry of the previous page. Without them the first page is served.
func (handler *Journal) ListEntries(c *fiber.Ctx) error {
	var cursor *remote.Document
	if id := c.Query("cursor_id"); id != "" {
		cursor = &remote.Document{
			ID:   id,
			Data: map[string]any{"createdAt": c.Query("cursor_created_at")},
		}
	}

	page, err := handler.Service.ListEntries(c.UserContext(), c.Params("uid"), cursor)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Journal entries retrieved",
		Results: page,
	})
}

func (handler *Journal) SaveEntry(c *fiber.Ctx) error {
	var request domainJournal.SaveEntryRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	entry, err := handler.Service.SaveEntry(c.UserContext(), c.Params("uid"), request)
	utils.PanicIfNeeded(err)

	return c.Status(fiber.StatusCreated).JSON(utils.ResponseData{
		Status:  201,
		Code:    "SUCCESS",
		Message: "Journal entry saved",
		Results: entry,
	})
}

func (handler *Journal) UpdateEntry(c *fiber.Ctx) error {
	var request domainJournal.SaveEntryRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, err)
	}

	err := handler.Service.UpdateEntry(c.UserContext(), c.Params("uid"), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Journal entry updated",
	})
}

func (handler *Journal) DeleteEntry(c *fiber.Ctx) error {
	err := handler.Service.DeleteEntry(c.UserContext(), c.Params("uid"), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Journal entry deleted",
	})
}
