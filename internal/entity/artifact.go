package entity

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	ProcessedNamespace = "processed"

	PNGExtension   = "png"
	PNGContentType = "image/png"
)

type StoredArtifact struct {
	Key         string            `json:"key"`      // processed/{id}.png
	Location    string            `json:"location"` // s3://bucket/key, gs://bucket/key
	ContentType string            `json:"content_type"`
	Tags        map[string]string `json:"tags"`
}

func ArtifactKey(id uuid.UUID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", ProcessedNamespace, id, ext)
}

// ParseStorageURI splits scheme://bucket/key.
func ParseStorageURI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("ParseStorageURI - url.Parse: %w", err)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme == "" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("ParseStorageURI - not a bucket uri: %q", uri)
	}

	return u.Host, key, nil
}
