package restapi

import (
	"net/http"

	"github.com/andreyxaxa/Background-Remover/config"
	v1 "github.com/andreyxaxa/Background-Remover/internal/controller/restapi/v1"
	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title Background remover
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, proc usecase.ProcessingUseCase, l logger.Interface) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// K8s probe
	app.Get("/healthz", func(ctx *fiber.Ctx) error { return ctx.SendStatus(http.StatusOK) })

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewImageRoutes(apiV1Group, proc, l, cfg.Processing.RequestTimeout)
	}
}
