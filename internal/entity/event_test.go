package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestProcessingEvent_MessageWireFormat(t *testing.T) {
	id := uuid.MustParse("0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10")

	msg, err := NewProcessingEvent(id, "cat.jpg", "gs://bucket/processed/0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10.png").Message()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := `{"image_id":"0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10","original_name":"cat.jpg",` +
		`"storage_path":"gs://bucket/processed/0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10.png","tags":["background-removed"]}`

	if string(msg.Payload) != expected {
		t.Errorf("Expected payload\n%s\ngot\n%s", expected, msg.Payload)
	}

	if msg.Key != id.String() {
		t.Errorf("Expected key %s, got %s", id, msg.Key)
	}

	if msg.Headers[HeaderSchemaVersion] != "1" || msg.Headers[HeaderContentType] != "application/json" {
		t.Errorf("Unexpected headers %v", msg.Headers)
	}
}

func TestDecodeProcessingEvent(t *testing.T) {
	id := uuid.New()

	e, err := DecodeProcessingEvent([]byte(`{"image_id":"` + id.String() + `","original_name":"a","storage_path":"s3://b/k"}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if e.ImageID != id || e.OriginalName != "a" || e.StoragePath != "s3://b/k" {
		t.Errorf("Unexpected event %+v", e)
	}

	if e.Tags == nil || len(e.Tags) != 0 {
		t.Errorf("Expected empty tags, got %#v", e.Tags)
	}

	// unknown fields from newer producers are ignored
	_, err = DecodeProcessingEvent([]byte(`{"image_id":"` + id.String() + `","storage_path":"s3://b/k","extra":1}`))
	if err != nil {
		t.Errorf("Expected unknown fields to be ignored, got: %v", err)
	}
}

func TestDecodeProcessingEvent_Rejects(t *testing.T) {
	payloads := []string{
		``,
		`[]`,
		`{"image_id":"","storage_path":"s3://b/k"}`,
		`{"image_id":"00000000-0000-0000-0000-000000000000","storage_path":"s3://b/k"}`,
		`{"image_id":"0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10","storage_path":""}`,
		`{"image_id":"0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10","storage_path":"s3://b/k","tags":"x"}`,
	}

	for _, p := range payloads {
		if _, err := DecodeProcessingEvent([]byte(p)); err == nil {
			t.Errorf("Expected %q to be rejected", p)
		}
	}
}

func TestSupportedSchemaVersion(t *testing.T) {
	cases := map[string]bool{
		"":    true,
		"1":   true,
		"2":   false,
		"0":   false,
		"one": false,
	}

	for header, expected := range cases {
		if SupportedSchemaVersion(header) != expected {
			t.Errorf("SupportedSchemaVersion(%q): expected %v", header, expected)
		}
	}
}

func TestNewMetadataRecord_CopiesTags(t *testing.T) {
	e := NewProcessingEvent(uuid.New(), "a", "gs://b/k")
	record := NewMetadataRecord(e)

	e.Tags[0] = "mutated"

	if record.Tags[0] != TagBackgroundRemoved {
		t.Errorf("Expected record tags to be independent, got %v", record.Tags)
	}

	if record.Status != StatusProcessed || record.ProcessedAt != nil {
		t.Errorf("Unexpected record %+v", record)
	}
}
