package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestArtifactKey(t *testing.T) {
	id := uuid.MustParse("0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10")

	if key := ArtifactKey(id, PNGExtension); key != "processed/0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10.png" {
		t.Errorf("Unexpected key %s", key)
	}
}

func TestParseStorageURI(t *testing.T) {
	bucket, key, err := ParseStorageURI("gs://images/processed/a.png")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if bucket != "images" || key != "processed/a.png" {
		t.Errorf("Unexpected split %s %s", bucket, key)
	}

	for _, uri := range []string{"", "processed/a.png", "gs://images", "gs://images/", "://x"} {
		if _, _, err := ParseStorageURI(uri); err == nil {
			t.Errorf("Expected %q to be rejected", uri)
		}
	}
}
