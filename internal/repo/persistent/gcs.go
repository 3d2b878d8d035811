package persistent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"google.golang.org/api/googleapi"
)

type GCSArtifactRepo struct {
	bucket *storage.BucketHandle
	name   string

	// optional explicit signer; empty means the client's own credentials sign
	signerEmail string
	signerKey   []byte
}

func NewGCSArtifactRepo(client *storage.Client, bucket, signerEmail, signerPrivateKey string) *GCSArtifactRepo {
	r := &GCSArtifactRepo{
		bucket:      client.Bucket(bucket),
		name:        bucket,
		signerEmail: signerEmail,
	}

	if signerPrivateKey != "" {
		// env files carry the PEM with literal \n sequences
		r.signerKey = []byte(strings.ReplaceAll(signerPrivateKey, `\n`, "\n"))
	}

	return r
}

func (r *GCSArtifactRepo) Put(ctx context.Context, key string, data []byte, contentType string, tags map[string]string) error {
	w := r.bucket.Object(key).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = tags

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("GCSArtifactRepo - Put - w.Write: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("GCSArtifactRepo - Put - w.Close: %w", classifyGCSError(err))
	}

	return nil
}

func (r *GCSArtifactRepo) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	}
	if r.signerEmail != "" {
		opts.GoogleAccessID = r.signerEmail
		opts.PrivateKey = r.signerKey
	}

	url, err := r.bucket.SignedURL(key, opts)
	if err != nil {
		return "", fmt.Errorf("GCSArtifactRepo - SignedURL - r.bucket.SignedURL: %w", err)
	}

	return url, nil
}

func (r *GCSArtifactRepo) Location(key string) string {
	return fmt.Sprintf("gs://%s/%s", r.name, key)
}

// classifyGCSError marks a failed DoesNotExist precondition.
func classifyGCSError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
		return fmt.Errorf("%w: %w", errs.ErrArtifactExists, err)
	}

	return err
}
