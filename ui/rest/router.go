package rest

import (
	"strings"
	"time"

	domainAccess "github.com/AzielCF/az-learn/domains/access"
	domainAnalytics "github.com/AzielCF/az-learn/domains/analytics"
	domainCache "github.com/AzielCF/az-learn/domains/cache"
	domainChat "github.com/AzielCF/az-learn/domains/chat"
	"github.com/AzielCF/az-learn/domains/health"
	domainJournal "github.com/AzielCF/az-learn/domains/journal"
	domainManifesto "github.com/AzielCF/az-learn/domains/manifesto"
	domainMessage "github.com/AzielCF/az-learn/domains/message"
	domainNote "github.com/AzielCF/az-learn/domains/note"
	domainRoadmap "github.com/AzielCF/az-learn/domains/roadmap"
	"github.com/AzielCF/az-learn/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Services struct {
	Notes       domainNote.INoteUsecase
	Roadmaps    domainRoadmap.IRoadmapUsecase
	Manifesto   domainManifesto.IManifestoUsecase
	Journals    domainJournal.IJournalUsecase
	ChatHistory domainChat.IChatHistoryUsecase
	Messages    domainMessage.IMessageUsecase
	Access      domainAccess.IAccessUsecase
	Analytics   domainAnalytics.IAnalyticsUsecase
	Cache       domainCache.ICacheUsecase
	Health      health.IHealthUsecase
}

type Options struct {
	AppName   string
	BasePath  string
	Debug     bool
	BasicAuth map[string]string
	Origins   []string
	// RateLimit is requests per minute per IP; zero disables the limiter.
	RateLimit int
}

// NewApp builds the fiber app with the middleware chain and every route group.
func NewApp(opts Options, s Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: !opts.Debug,
		ServerHeader:          "Hidden",
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(opts.Origins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New())
	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}
	if opts.Debug {
		app.Use(logger.New())
	}

	InitRestMonitoring(app.Group(opts.BasePath))

	api := app.Group(opts.BasePath + "/api")
	if len(opts.BasicAuth) > 0 {
		api.Use(basicauth.New(basicauth.Config{
			Users: opts.BasicAuth,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodOptions
			},
		}))
	}

	InitRestNote(api, s.Notes)
	InitRestRoadmap(api, s.Roadmaps)
	InitRestManifesto(api, s.Manifesto)
	InitRestJournal(api, s.Journals)
	InitRestChatHistory(api, s.ChatHistory)
	InitRestMessage(api, s.Messages)
	InitRestAccess(api, s.Access)
	InitRestAnalytics(api, s.Analytics)
	InitRestCache(api, s.Cache)
	InitRestHealth(api, s.Health)

	api.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	return app
}
