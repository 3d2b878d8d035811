package v1

import (
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewImageRoutes(apiV1Group fiber.Router, proc usecase.ProcessingUseCase, l logger.Interface, requestTimeout time.Duration) {
	r := &V1{proc: proc, logger: l, requestTimeout: requestTimeout}

	{
		apiV1Group.Post("/process-image", r.processImage)
		apiV1Group.Get("/images/:id", r.getImage)
	}
}
