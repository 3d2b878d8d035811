package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/google/uuid"
)

const _defaultRetention = 7 * 24 * time.Hour

// OutboxUseCase stores events durably instead of sending them, and serves
// the relay that forwards them to the bus.
type OutboxUseCase struct {
	repo   repo.OutboxRepo
	logger logger.Interface

	retention time.Duration
	now       func() time.Time
}

func New(r repo.OutboxRepo, l logger.Interface) *OutboxUseCase {
	return &OutboxUseCase{
		repo:      r,
		logger:    l,
		retention: _defaultRetention,
		now:       time.Now,
	}
}

// Publish implements infrastructure.EventPublisher by writing a pending row.
func (uc *OutboxUseCase) Publish(ctx context.Context, topic string, msg entity.Message) error {
	aggregateID, err := uuid.Parse(msg.Key)
	if err != nil {
		return fmt.Errorf("OutboxUseCase - Publish - uuid.Parse: %w", err)
	}

	event := &entity.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: aggregateID,
		Topic:       topic,
		Payload:     msg.Payload,
		Headers:     msg.Headers,
		Status:      entity.Pending,
		CreatedAt:   uc.now(),
		RetryCount:  0,
	}

	err = uc.repo.Create(ctx, event)
	if err != nil {
		return fmt.Errorf("OutboxUseCase - Publish - uc.repo.Create: %w", err)
	}

	return nil
}

func (uc *OutboxUseCase) ClaimPendingEvents(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error) {
	events, err := uc.repo.ClaimPending(ctx, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("OutboxUseCase - ClaimPendingEvents - uc.repo.ClaimPending: %w", err)
	}

	return events, nil
}

func (uc *OutboxUseCase) MarkAsProcessedBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.repo.MarkAsProcessedBatch(ctx, ids(events))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - MarkAsProcessedBatch - uc.repo.MarkAsProcessedBatch: %w", err)
	}

	return nil
}

func (uc *OutboxUseCase) IncrementRetryCountBatch(ctx context.Context, events []*entity.OutboxEvent) error {
	err := uc.repo.IncrementRetryCountBatch(ctx, ids(events))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - IncrementRetryCountBatch - uc.repo.IncrementRetryCountBatch: %w", err)
	}

	return nil
}

func (uc *OutboxUseCase) MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) error {
	count, err := uc.repo.MarkMaxRetriesAsFailed(ctx, maxRetries)
	if err != nil {
		return fmt.Errorf("OutboxUseCase - MarkMaxRetriesAsFailed - uc.repo.MarkMaxRetriesAsFailed: %w", err)
	}

	// these images will never get a metadata record
	if count > 0 {
		uc.logger.Warn("OutboxUseCase - MarkMaxRetriesAsFailed - %d events exhausted their retries", count)
	}

	return nil
}

func (uc *OutboxUseCase) CleanupOutbox(ctx context.Context) error {
	count, err := uc.repo.DeleteOldProcessedAndFailed(ctx, uc.now().Add(-uc.retention))
	if err != nil {
		return fmt.Errorf("OutboxUseCase - CleanupOutbox - uc.repo.DeleteOldProcessedAndFailed: %w", err)
	}

	if count > 0 {
		uc.logger.Info("OutboxUseCase - CleanupOutbox - deleted %d old events", count)
	}

	return nil
}

func ids(events []*entity.OutboxEvent) uuid.UUIDs {
	res := make(uuid.UUIDs, 0, len(events))
	for _, event := range events {
		res = append(res, event.ID)
	}

	return res
}
