package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetadataRecord is keyed by ImageID. ProcessedAt is assigned by the sink at commit.
type MetadataRecord struct {
	ImageID      uuid.UUID        `json:"image_id"`
	OriginalName string           `json:"original_name"`
	Status       ProcessingStatus `json:"status"`
	StoragePath  string           `json:"storage_path"`
	ProcessedAt  *time.Time       `json:"processed_at,omitempty"`
	Tags         []string         `json:"tags"`
}

func NewMetadataRecord(e ProcessingEvent) *MetadataRecord {
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)

	return &MetadataRecord{
		ImageID:      e.ImageID,
		OriginalName: e.OriginalName,
		Status:       StatusProcessed,
		StoragePath:  e.StoragePath,
		Tags:         tags,
	}
}
