package usecase

import (
	"context"

	"github.com/andreyxaxa/Background-Remover/internal/dto"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/google/uuid"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_usecase.go -package=mock_usecase

type (
	ProcessingUseCase interface {
		// Process may return a non-nil result together with an error wrapping
		// errs.ErrEventPublishFailed; the result is then fully usable.
		Process(ctx context.Context, req dto.ProcessingRequest) (*dto.ProcessingResult, error)
		Lookup(ctx context.Context, id uuid.UUID, authToken string) (*dto.ImageView, error)
	}

	MetadataUseCase interface {
		OnEvent(ctx context.Context, payload []byte) error
		Get(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error)
	}

	OutboxUseCase interface {
		ClaimPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error
		IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error
		CleanupOutbox(ctx context.Context) error
	}
)
