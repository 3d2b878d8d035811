package v1

import (
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
)

type V1 struct {
	proc   usecase.ProcessingUseCase
	logger logger.Interface

	requestTimeout time.Duration
}
