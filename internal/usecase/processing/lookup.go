package processing

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreyxaxa/Background-Remover/internal/dto"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
)

// Lookup returns the committed metadata of id with a freshly signed URL.
func (c *Coordinator) Lookup(ctx context.Context, id uuid.UUID, authToken string) (*dto.ImageView, error) {
	if strings.TrimSpace(authToken) == "" {
		return nil, fmt.Errorf("Coordinator - Lookup: %w", errs.ErrUnauthenticated)
	}

	record, err := c.records.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Lookup - c.records.Get: %w", err)
	}

	_, key, err := entity.ParseStorageURI(record.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Lookup - entity.ParseStorageURI: %w: %w", errs.ErrHandleGenerationFailed, err)
	}

	expiresAt := c.now().Add(c.signedURLTTL)

	signedURL, err := c.store.SignedURL(ctx, key, c.signedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("Coordinator - Lookup - c.store.SignedURL: %w: %w", errs.ErrHandleGenerationFailed, err)
	}

	return &dto.ImageView{
		ImageID:      record.ImageID,
		OriginalName: record.OriginalName,
		Status:       string(record.Status),
		StoragePath:  record.StoragePath,
		ProcessedAt:  record.ProcessedAt,
		Tags:         record.Tags,
		SignedURL:    signedURL,
		ExpiresAt:    expiresAt,
	}, nil
}
