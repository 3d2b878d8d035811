package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProcessingRequest struct {
	Data         []byte
	OriginalName string
	AuthToken    string
}

type ProcessingResult struct {
	ImageID     uuid.UUID
	SignedURL   string
	StoragePath string
	ExpiresAt   time.Time
}

type ImageView struct {
	ImageID      uuid.UUID
	OriginalName string
	Status       string
	StoragePath  string
	ProcessedAt  *time.Time
	Tags         []string
	SignedURL    string
	ExpiresAt    time.Time
}
