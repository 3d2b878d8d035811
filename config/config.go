package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageS3  = "s3"
	StorageGCS = "gcs"

	MetadataPostgres  = "postgres"
	MetadataFirestore = "firestore"

	PublishDirect = "direct"
	PublishOutbox = "outbox"

	TransformLocal = "local"
	TransformRembg = "rembg"

	BusKafka  = "kafka"
	BusPubSub = "pubsub"

	// multipart file limit of POST /v1/process-image; the body limit must leave
	// room for it plus the multipart framing, or fasthttp answers 413 itself.
	maxUploadSize = 10 << 20
)

type (
	Config struct {
		HTTP            HTTP
		Log             Log
		Processing      Processing
		Transform       Transform
		Storage         Storage
		S3              S3
		GCS             GCS
		Metadata        Metadata
		PG              PG
		Firestore       Firestore
		Bus             Bus
		Kafka           Kafka
		PubSub          PubSub
		KafkaController KafkaController
		OutboxRelay     OutboxRelay
		Swagger         Swagger
	}

	HTTP struct {
		Port           string        `env:"HTTP_PORT,required"`
		UsePreforkMode bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		BodyLimit      int           `env:"HTTP_BODY_LIMIT" envDefault:"11534336"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required"`
	}

	Processing struct {
		SignedURLTTL   time.Duration `env:"PROCESSING_SIGNED_URL_TTL" envDefault:"5m"`
		RequestTimeout time.Duration `env:"PROCESSING_REQUEST_TIMEOUT" envDefault:"25s"`
		PublishMode    string        `env:"PUBLISH_MODE" envDefault:"direct"`
		MaxPixels      int           `env:"PROCESSING_MAX_PIXELS" envDefault:"40000000"`
	}

	Transform struct {
		Backend   string        `env:"TRANSFORM_BACKEND" envDefault:"local"`
		Tolerance float64       `env:"TRANSFORM_TOLERANCE" envDefault:"0.12"`
		Feather   float64       `env:"TRANSFORM_FEATHER" envDefault:"0.6"`
		RembgURL  string        `env:"REMBG_URL" envDefault:"http://localhost:7000/api/remove"`
		Timeout   time.Duration `env:"REMBG_TIMEOUT" envDefault:"20s"`
	}

	Storage struct {
		Backend string `env:"STORAGE_BACKEND" envDefault:"s3"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT"`
		AccessKey      string        `env:"S3_ACCESS_KEY"`
		SecretKey      string        `env:"S3_SECRET_KEY"`
		Bucket         string        `env:"S3_BUCKET"`
		Region         string        `env:"S3_REGION" envDefault:"garage"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	GCS struct {
		Bucket          string `env:"STORAGE_BUCKET"`
		CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
		// Signing identity when the runtime credentials cannot sign (e.g. metadata server).
		SignerEmail      string `env:"GCS_SIGNER_EMAIL"`
		SignerPrivateKey string `env:"GCS_SIGNER_PRIVATE_KEY"`
	}

	Metadata struct {
		Backend string `env:"METADATA_BACKEND" envDefault:"postgres"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX" envDefault:"4"`
		URL     string `env:"PG_URL"`
	}

	Firestore struct {
		ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
		Collection      string `env:"FIRESTORE_COLLECTION" envDefault:"image_metadata"`
		CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	}

	Bus struct {
		Backend string `env:"BUS_BACKEND" envDefault:"kafka"`
	}

	Kafka struct {
		Brokers []string `env:"KAFKA_BROKERS"`
		GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"metadata-processor"`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"image-processed"`
	}

	PubSub struct {
		ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
		Topic           string `env:"PUBSUB_TOPIC" envDefault:"image-processed"`
		CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	}

	KafkaController struct {
		Enabled         bool          `env:"KAFKA_CONTROLLER_ENABLED" envDefault:"true"`
		Workers         int           `env:"KAFKA_CONTROLLER_WORKERS" envDefault:"4"`
		CommitTimeout   time.Duration `env:"KAFKA_CONTROLLER_COMMIT_TIMEOUT" envDefault:"2s"`
		ProcessTimeout  time.Duration `env:"KAFKA_CONTROLLER_PROCESS_TIMEOUT" envDefault:"15s"`
		RetryBackoff    time.Duration `env:"KAFKA_CONTROLLER_RETRY_BACKOFF" envDefault:"500ms"`
		MaxRetryBackoff time.Duration `env:"KAFKA_CONTROLLER_MAX_RETRY_BACKOFF" envDefault:"30s"`
		ShutdownTimeout time.Duration `env:"KAFKA_CONTROLLER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	OutboxRelay struct {
		PollInterval        time.Duration `env:"OUTBOX_RELAY_POLL_INTERVAL" envDefault:"2s"`
		MarkFailedInterval  time.Duration `env:"OUTBOX_RELAY_MARK_FAILED_INTERVAL" envDefault:"2m"`
		CleanupInterval     time.Duration `env:"OUTBOX_RELAY_CLEANUP_INTERVAL" envDefault:"24h"`
		ProcessBatchTimeout time.Duration `env:"OUTBOX_RELAY_PROCESS_BATCH_TIMEOUT" envDefault:"15s"`
		ShutdownTimeout     time.Duration `env:"OUTBOX_RELAY_SHUTDOWN_TIMEOUT" envDefault:"5s"`
		BatchSize           int           `env:"OUTBOX_RELAY_BATCH_SIZE" envDefault:"100"`
		MaxRetries          int           `env:"OUTBOX_RELAY_MAX_RETRIES" envDefault:"3"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	// Function is the configuration of the standalone metadata function.
	Function struct {
		Log       Log
		Metadata  Metadata
		PG        PG
		Firestore Firestore
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errList []error

	switch c.Storage.Backend {
	case StorageS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			errList = append(errList, errors.New("S3_ENDPOINT and S3_BUCKET are required for s3 storage"))
		}
	case StorageGCS:
		if c.GCS.Bucket == "" {
			errList = append(errList, errors.New("STORAGE_BUCKET is required for gcs storage"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend))
	}

	if err := validateMetadata(c.Metadata, c.PG, c.Firestore); err != nil {
		errList = append(errList, err)
	}

	switch c.Processing.PublishMode {
	case PublishDirect:
	case PublishOutbox:
		if c.PG.URL == "" {
			errList = append(errList, errors.New("PUBLISH_MODE=outbox requires PG_URL"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown PUBLISH_MODE %q", c.Processing.PublishMode))
	}

	switch c.Transform.Backend {
	case TransformLocal, TransformRembg:
	default:
		errList = append(errList, fmt.Errorf("unknown TRANSFORM_BACKEND %q", c.Transform.Backend))
	}

	switch c.Bus.Backend {
	case BusKafka:
	case BusPubSub:
		if c.PubSub.ProjectID == "" {
			errList = append(errList, errors.New("GOOGLE_CLOUD_PROJECT is required for the pubsub bus"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown BUS_BACKEND %q", c.Bus.Backend))
	}

	if (c.Bus.Backend == BusKafka || c.KafkaController.Enabled) && len(c.Kafka.Brokers) == 0 {
		errList = append(errList, errors.New("KAFKA_BROKERS is required for the kafka bus and controller"))
	}

	if c.HTTP.BodyLimit <= maxUploadSize {
		errList = append(errList, fmt.Errorf("HTTP_BODY_LIMIT must exceed the %d byte upload limit", maxUploadSize))
	}

	if c.Processing.MaxPixels <= 0 {
		errList = append(errList, errors.New("PROCESSING_MAX_PIXELS must be positive"))
	}

	if c.KafkaController.Workers < 1 {
		errList = append(errList, errors.New("KAFKA_CONTROLLER_WORKERS must be at least 1"))
	}

	if c.Processing.SignedURLTTL <= 0 {
		errList = append(errList, errors.New("PROCESSING_SIGNED_URL_TTL must be positive"))
	}

	return errors.Join(errList...)
}

func NewFunction() (*Function, error) {
	cfg := &Function{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := validateMetadata(cfg.Metadata, cfg.PG, cfg.Firestore); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Topic is the destination of processing events on the selected bus.
func (c *Config) Topic() string {
	if c.Bus.Backend == BusPubSub {
		return c.PubSub.Topic
	}

	return c.Kafka.Topic
}

// UsesPostgres reports whether a pool must be opened.
func (c *Config) UsesPostgres() bool {
	return c.Metadata.Backend == MetadataPostgres || c.Processing.PublishMode == PublishOutbox
}

func validateMetadata(m Metadata, pg PG, fs Firestore) error {
	switch m.Backend {
	case MetadataPostgres:
		if pg.URL == "" {
			return errors.New("PG_URL is required for postgres metadata")
		}
	case MetadataFirestore:
		if fs.ProjectID == "" {
			return errors.New("GOOGLE_CLOUD_PROJECT is required for firestore metadata")
		}
	default:
		return fmt.Errorf("unknown METADATA_BACKEND %q", m.Backend)
	}

	return nil
}
