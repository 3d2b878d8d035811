package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type settings struct {
	credentialsFile string
}

type Option func(*settings)

// CredentialsFile overrides Application Default Credentials.
func CredentialsFile(path string) Option {
	return func(s *settings) {
		s.credentialsFile = path
	}
}

func clientOptions(opts []Option) []option.ClientOption {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	var co []option.ClientOption
	if s.credentialsFile != "" {
		co = append(co, option.WithCredentialsFile(s.credentialsFile))
	}

	return co
}

// NewStorageClient creates a Cloud Storage client.
func NewStorageClient(ctx context.Context, opts ...Option) (*storage.Client, error) {
	client, err := storage.NewClient(ctx, clientOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("gcp - NewStorageClient - storage.NewClient: %w", err)
	}

	return client, nil
}

// NewFirestoreClient creates a Firestore client for projectID.
func NewFirestoreClient(ctx context.Context, projectID string, opts ...Option) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("gcp - NewFirestoreClient: projectID must be provided")
	}

	client, err := firestore.NewClient(ctx, projectID, clientOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("gcp - NewFirestoreClient - firestore.NewClient: %w", err)
	}

	return client, nil
}

// NewPubSubClient creates a Pub/Sub client for projectID.
func NewPubSubClient(ctx context.Context, projectID string, opts ...Option) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("gcp - NewPubSubClient: projectID must be provided")
	}

	client, err := pubsub.NewClient(ctx, projectID, clientOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("gcp - NewPubSubClient - pubsub.NewClient: %w", err)
	}

	return client, nil
}
