package entity

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const (
	TagBackgroundRemoved = "background-removed"

	// Carried as a message header so the payload stays byte-compatible
	// with consumers that predate versioning.
	HeaderSchemaVersion = "schema-version"
	HeaderContentType   = "content-type"

	EventSchemaVersion = 1
)

// ProcessingEvent is the wire contract between the processing and metadata stages.
type ProcessingEvent struct {
	ImageID      uuid.UUID `json:"image_id"`
	OriginalName string    `json:"original_name"`
	StoragePath  string    `json:"storage_path"`
	Tags         []string  `json:"tags"`
}

// Message is what publishers put on the bus.
type Message struct {
	Key     string
	Payload []byte
	Headers map[string]string
}

func NewProcessingEvent(id uuid.UUID, originalName, storagePath string) ProcessingEvent {
	return ProcessingEvent{
		ImageID:      id,
		OriginalName: originalName,
		StoragePath:  storagePath,
		Tags:         []string{TagBackgroundRemoved},
	}
}

func (e ProcessingEvent) Message() (Message, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return Message{}, fmt.Errorf("ProcessingEvent - Message - json.Marshal: %w", err)
	}

	return Message{
		Key:     e.ImageID.String(),
		Payload: b,
		Headers: map[string]string{
			HeaderSchemaVersion: strconv.Itoa(EventSchemaVersion),
			HeaderContentType:   "application/json",
		},
	}, nil
}

// DecodeProcessingEvent rejects payloads without a valid image id or storage path.
// Absent tags decode to an empty list.
func DecodeProcessingEvent(payload []byte) (ProcessingEvent, error) {
	var e ProcessingEvent

	err := json.Unmarshal(payload, &e)
	if err != nil {
		return ProcessingEvent{}, fmt.Errorf("DecodeProcessingEvent - json.Unmarshal: %w", err)
	}

	if e.ImageID == uuid.Nil {
		return ProcessingEvent{}, fmt.Errorf("DecodeProcessingEvent: image_id is required")
	}

	if e.StoragePath == "" {
		return ProcessingEvent{}, fmt.Errorf("DecodeProcessingEvent: storage_path is required")
	}

	if e.Tags == nil {
		e.Tags = []string{}
	}

	return e, nil
}

// SupportedSchemaVersion accepts a missing header as version 1.
func SupportedSchemaVersion(header string) bool {
	if header == "" {
		return true
	}

	v, err := strconv.Atoi(header)
	if err != nil {
		return false
	}

	return v == EventSchemaVersion
}
