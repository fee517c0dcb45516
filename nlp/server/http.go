package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oarkflow/summarise/nlp/config"
	"github.com/oarkflow/summarise/nlp/engine"
	"github.com/oarkflow/summarise/nlp/features"
)

// New returns the HTTP API around e. gatherer backs GET /metrics and may be
// nil.
func New(e *engine.Engine, gatherer prometheus.Gatherer, cfg config.Server, log *slog.Logger) *fiber.App {
	if log == nil {
		log = slog.Default()
	}
	app := fiber.New(fiber.Config{
		AppName:               "summarise",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := app.Group("/v1")
	v1.Post("/features", handle(e, log, false))
	v1.Post("/summarize", handle(e, log, true))
	return app
}

func handle(e *engine.Engine, log *slog.Logger, summary bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req engine.Request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		if summary {
			req.Summary = true
		}
		rep, err := e.Run(c.UserContext(), req)
		if err != nil {
			status := Status(err)
			if status == http.StatusInternalServerError {
				log.Error("request failed", slog.Any("requestid", c.Locals("requestid")), slog.String("err", err.Error()))
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error(), "kind": engine.Outcome(err)})
		}
		return c.JSON(rep)
	}
}

// Status maps an engine error to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, features.ErrInvalidConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, features.ErrParseFailure):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
