package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/pkg/postgres"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	metadataTable = "image_metadata"

	// Columns
	imageIDColumn      = "image_id"
	originalNameColumn = "original_name"
	statusColumn       = "processing_status"
	storagePathColumn  = "storage_path"
	processedAtColumn  = "processed_at"
	tagsColumn         = "tags"
)

// processed_at keeps the first commit time; redelivered events rewrite the
// remaining columns with the same values.
var upsertSuffix = fmt.Sprintf(
	"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s, %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s, %[5]s = EXCLUDED.%[5]s RETURNING %[6]s",
	imageIDColumn, originalNameColumn, statusColumn, storagePathColumn, tagsColumn, processedAtColumn,
)

type MetadataPostgresRepo struct {
	*postgres.Postgres
}

func NewMetadataPostgresRepo(pg *postgres.Postgres) *MetadataPostgresRepo {
	return &MetadataPostgresRepo{pg}
}

func (r *MetadataPostgresRepo) Upsert(ctx context.Context, record *entity.MetadataRecord) error {
	sql, args, err := r.Builder.
		Insert(metadataTable).
		Columns(
			imageIDColumn,
			originalNameColumn,
			statusColumn,
			storagePathColumn,
			processedAtColumn,
			tagsColumn,
		).
		Values(
			record.ImageID,
			record.OriginalName,
			string(record.Status),
			record.StoragePath,
			squirrel.Expr("now()"),
			record.Tags,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("MetadataPostgresRepo - Upsert - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	err = executor.QueryRow(ctx, sql, args...).Scan(&record.ProcessedAt)
	if err != nil {
		return fmt.Errorf("MetadataPostgresRepo - Upsert - executor.QueryRow: %w", classifyPgError(err))
	}

	return nil
}

func (r *MetadataPostgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error) {
	sql, args, err := r.Builder.
		Select(
			imageIDColumn,
			originalNameColumn,
			statusColumn,
			storagePathColumn,
			processedAtColumn,
			tagsColumn,
		).
		From(metadataTable).
		Where(squirrel.Eq{imageIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MetadataPostgresRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var (
		record entity.MetadataRecord
		status string
	)
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&record.ImageID,
		&record.OriginalName,
		&status,
		&record.StoragePath,
		&record.ProcessedAt,
		&record.Tags,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("MetadataPostgresRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("MetadataPostgresRepo - GetByID - executor.QueryRow: %w", err)
	}

	record.Status = entity.ProcessingStatus(status)
	if record.Tags == nil {
		record.Tags = []string{}
	}

	return &record, nil
}
