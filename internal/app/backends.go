package app

import (
	"context"
	"fmt"

	"github.com/andreyxaxa/Background-Remover/config"
	"github.com/andreyxaxa/Background-Remover/internal/infrastructure"
	infrakafka "github.com/andreyxaxa/Background-Remover/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Background-Remover/internal/infrastructure/processor"
	infrapubsub "github.com/andreyxaxa/Background-Remover/internal/infrastructure/pubsub"
	"github.com/andreyxaxa/Background-Remover/internal/infrastructure/rembg"
	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/internal/repo/persistent"
	"github.com/andreyxaxa/Background-Remover/pkg/gcp"
	"github.com/andreyxaxa/Background-Remover/pkg/kafka/producer"
	"github.com/andreyxaxa/Background-Remover/pkg/postgres"
	"github.com/andreyxaxa/Background-Remover/pkg/s3client"
)

// closer releases a client opened while wiring.
type closer func() error

func noopCloser() error { return nil }

// eventBus publishes directly and relays outbox rows.
type eventBus interface {
	infrastructure.EventPublisher
	infrastructure.EventsSender
}

func newEventBus(ctx context.Context, cfg *config.Config) (eventBus, error) {
	switch cfg.Bus.Backend {
	case config.BusPubSub:
		client, err := gcp.NewPubSubClient(ctx, cfg.PubSub.ProjectID, gcp.CredentialsFile(cfg.PubSub.CredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("app - newEventBus - gcp.NewPubSubClient: %w", err)
		}

		return infrapubsub.NewEventPublisher(client), nil
	default:
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
		if err != nil {
			return nil, fmt.Errorf("app - newEventBus - producer.New: %w", err)
		}

		return infrakafka.NewEventProducer(kafkaProducer), nil
	}
}

func newRemover(cfg config.Transform) infrastructure.BackgroundRemover {
	if cfg.Backend == config.TransformRembg {
		return rembg.New(cfg.RembgURL, cfg.Timeout)
	}

	return processor.New(processor.Tolerance(cfg.Tolerance), processor.Feather(cfg.Feather))
}

func newArtifactStore(ctx context.Context, cfg *config.Config) (repo.ArtifactStore, closer, error) {
	switch cfg.Storage.Backend {
	case config.StorageGCS:
		client, err := gcp.NewStorageClient(ctx, gcp.CredentialsFile(cfg.GCS.CredentialsFile))
		if err != nil {
			return nil, nil, fmt.Errorf("app - newArtifactStore - gcp.NewStorageClient: %w", err)
		}

		store := persistent.NewGCSArtifactRepo(client, cfg.GCS.Bucket, cfg.GCS.SignerEmail, cfg.GCS.SignerPrivateKey)

		return store, client.Close, nil
	default:
		s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
		defer s3Cancel()

		s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey,
			s3client.Region(cfg.S3.Region),
			s3client.Bucket(cfg.S3.Bucket),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("app - newArtifactStore - s3client.New: %w", err)
		}

		return persistent.NewS3ArtifactRepo(s3c, cfg.S3.Bucket), noopCloser, nil
	}
}

// NewMetadataSink opens the configured metadata backend. pg is required for
// the postgres backend only.
func NewMetadataSink(ctx context.Context, backend string, pg *postgres.Postgres, fs config.Firestore) (repo.MetadataSink, func() error, error) {
	switch backend {
	case config.MetadataFirestore:
		client, err := gcp.NewFirestoreClient(ctx, fs.ProjectID, gcp.CredentialsFile(fs.CredentialsFile))
		if err != nil {
			return nil, nil, fmt.Errorf("app - NewMetadataSink - gcp.NewFirestoreClient: %w", err)
		}

		return persistent.NewMetadataFirestoreRepo(client, fs.Collection), client.Close, nil
	case config.MetadataPostgres:
		if pg == nil {
			return nil, nil, fmt.Errorf("app - NewMetadataSink: postgres backend without a pool")
		}

		return persistent.NewMetadataPostgresRepo(pg), noopCloser, nil
	default:
		return nil, nil, fmt.Errorf("app - NewMetadataSink: unknown backend %q", backend)
	}
}
