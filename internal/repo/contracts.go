package repo

import (
	"context"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/google/uuid"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_repo.go -package=mock_repo

type (
	// ArtifactStore is a durable blob store for processed images.
	ArtifactStore interface {
		Put(ctx context.Context, key string, data []byte, contentType string, tags map[string]string) error
		SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
		// Location is the bucket URI of key, e.g. gs://bucket/processed/x.png.
		Location(key string) string
	}

	// MetadataSink upserts records keyed by image id. Transient failures wrap
	// errs.ErrSinkUnavailable, permanent ones errs.ErrRecordRejected.
	MetadataSink interface {
		Upsert(ctx context.Context, record *entity.MetadataRecord) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error)
	}

	OutboxRepo interface {
		Create(ctx context.Context, event *entity.OutboxEvent) error
		ClaimPending(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error)
		MarkAsProcessedBatch(ctx context.Context, ids uuid.UUIDs) error
		IncrementRetryCountBatch(ctx context.Context, ids uuid.UUIDs) error
		MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) (int64, error)
		DeleteOldProcessedAndFailed(ctx context.Context, olderThan time.Time) (int64, error)
	}
)
