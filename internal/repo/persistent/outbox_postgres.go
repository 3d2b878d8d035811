package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/pkg/postgres"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
)

const (
	// Table
	outboxTable = "processing_events_outbox"

	// Columns
	outboxIDColumn          = "id"
	outboxAggregateIDColumn = "aggregate_id"
	outboxTopicColumn       = "topic"
	outboxPayloadColumn     = "payload"
	outboxHeadersColumn     = "headers"
	outboxStatusColumn      = "status"
	outboxCreatedAtColumn   = "created_at"
	outboxProcessedAtColumn = "processed_at"
	outboxRetryCountColumn  = "retry_count"

	// a claimed row not confirmed within the lease is handed out again
	_claimLease = 5 * time.Minute
)

type OutboxPostgresRepo struct {
	*postgres.Postgres
}

func NewOutboxPostgresRepo(pg *postgres.Postgres) *OutboxPostgresRepo {
	return &OutboxPostgresRepo{pg}
}

func (r *OutboxPostgresRepo) Create(ctx context.Context, event *entity.OutboxEvent) error {
	headers, err := json.Marshal(event.Headers)
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - Create - json.Marshal: %w", err)
	}

	sql, args, err := r.Builder.
		Insert(outboxTable).
		Columns(
			outboxIDColumn,
			outboxAggregateIDColumn,
			outboxTopicColumn,
			outboxPayloadColumn,
			outboxHeadersColumn,
			outboxStatusColumn,
			outboxCreatedAtColumn,
			outboxRetryCountColumn,
		).
		Values(
			event.ID,
			event.AggregateID,
			event.Topic,
			event.Payload,
			headers,
			string(event.Status),
			event.CreatedAt,
			event.RetryCount,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

// ClaimPending locks up to limit sendable rows (skipping rows locked by other
// relays) and marks them processing in the same transaction.
func (r *OutboxPostgresRepo) ClaimPending(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error) {
	var events []*entity.OutboxEvent

	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		events, err = r.selectClaimable(ctx, maxRetries, limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		ids := make(uuid.UUIDs, 0, len(events))
		for _, e := range events {
			ids = append(ids, e.ID)
		}

		return r.setStatus(ctx, ids, entity.Processing)
	})
	if err != nil {
		return nil, fmt.Errorf("OutboxPostgresRepo - ClaimPending - r.WithinTransaction: %w", err)
	}

	for _, e := range events {
		e.Status = entity.Processing
	}

	return events, nil
}

func (r *OutboxPostgresRepo) selectClaimable(ctx context.Context, maxRetries, limit int) ([]*entity.OutboxEvent, error) {
	sql, args, err := r.Builder.
		Select(
			outboxIDColumn,
			outboxAggregateIDColumn,
			outboxTopicColumn,
			outboxPayloadColumn,
			outboxHeadersColumn,
			outboxStatusColumn,
			outboxCreatedAtColumn,
			outboxProcessedAtColumn,
			outboxRetryCountColumn,
		).
		From(outboxTable).
		Where(squirrel.And{
			squirrel.Lt{outboxRetryCountColumn: maxRetries},
			squirrel.Or{
				squirrel.Eq{outboxStatusColumn: string(entity.Pending)},
				squirrel.And{
					squirrel.Eq{outboxStatusColumn: string(entity.Processing)},
					squirrel.Lt{outboxProcessedAtColumn: time.Now().Add(-_claimLease)},
				},
			},
		}).
		OrderBy(outboxCreatedAtColumn + " ASC").
		Limit(uint64(limit)). //nolint:gosec // limit comes from config
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("OutboxPostgresRepo - selectClaimable - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("OutboxPostgresRepo - selectClaimable - executor.Query: %w", err)
	}
	defer rows.Close()

	events := make([]*entity.OutboxEvent, 0, limit)
	for rows.Next() {
		var (
			event   entity.OutboxEvent
			status  string
			headers []byte
		)
		err = rows.Scan(
			&event.ID,
			&event.AggregateID,
			&event.Topic,
			&event.Payload,
			&headers,
			&status,
			&event.CreatedAt,
			&event.ProcessedAt,
			&event.RetryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("OutboxPostgresRepo - selectClaimable - rows.Scan: %w", err)
		}

		event.Status = entity.OutboxStatus(status)
		if len(headers) > 0 {
			if err = json.Unmarshal(headers, &event.Headers); err != nil {
				return nil, fmt.Errorf("OutboxPostgresRepo - selectClaimable - json.Unmarshal: %w", err)
			}
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("OutboxPostgresRepo - selectClaimable - rows.Err: %w", err)
	}

	return events, nil
}

func (r *OutboxPostgresRepo) MarkAsProcessedBatch(ctx context.Context, ids uuid.UUIDs) error {
	err := r.setStatus(ctx, ids, entity.Processed)
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - MarkAsProcessedBatch: %w", err)
	}

	return nil
}

func (r *OutboxPostgresRepo) setStatus(ctx context.Context, ids uuid.UUIDs, status entity.OutboxStatus) error {
	sql, args, err := r.Builder.
		Update(outboxTable).
		Set(outboxStatusColumn, string(status)).
		Set(outboxProcessedAtColumn, time.Now()).
		Where(squirrel.Eq{outboxIDColumn: ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - setStatus - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - setStatus - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("OutboxPostgresRepo - setStatus: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *OutboxPostgresRepo) IncrementRetryCountBatch(ctx context.Context, ids uuid.UUIDs) error {
	sql, args, err := r.Builder.
		Update(outboxTable).
		Set(outboxRetryCountColumn, squirrel.Expr(outboxRetryCountColumn+" + 1")).
		Set(outboxStatusColumn, string(entity.Pending)).
		Where(squirrel.Eq{outboxIDColumn: ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - IncrementRetryCountBatch - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("OutboxPostgresRepo - IncrementRetryCountBatch - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("OutboxPostgresRepo - IncrementRetryCountBatch: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *OutboxPostgresRepo) MarkMaxRetriesAsFailed(ctx context.Context, maxRetries int) (int64, error) {
	sql, args, err := r.Builder.
		Update(outboxTable).
		Set(outboxStatusColumn, string(entity.Failed)).
		Where(squirrel.And{
			squirrel.Eq{outboxStatusColumn: string(entity.Pending)},
			squirrel.GtOrEq{outboxRetryCountColumn: maxRetries},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("OutboxPostgresRepo - MarkMaxRetriesAsFailed - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("OutboxPostgresRepo - MarkMaxRetriesAsFailed - executor.Exec: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *OutboxPostgresRepo) DeleteOldProcessedAndFailed(ctx context.Context, olderThan time.Time) (int64, error) {
	sql, args, err := r.Builder.
		Delete(outboxTable).
		Where(squirrel.And{
			squirrel.Eq{outboxStatusColumn: []string{string(entity.Processed), string(entity.Failed)}},
			squirrel.Lt{outboxCreatedAtColumn: olderThan},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("OutboxPostgresRepo - DeleteOldProcessedAndFailed - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)
	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("OutboxPostgresRepo - DeleteOldProcessedAndFailed - executor.Exec: %w", err)
	}

	return tag.RowsAffected(), nil
}
