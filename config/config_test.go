package config

import (
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("S3_ENDPOINT", "http://garage:3900")
	t.Setenv("S3_BUCKET", "images")
	t.Setenv("PG_URL", "postgres://u:p@db:5432/images")
}

func TestNew_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := New()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Storage.Backend != StorageS3 || cfg.Metadata.Backend != MetadataPostgres {
		t.Errorf("Unexpected backends %s %s", cfg.Storage.Backend, cfg.Metadata.Backend)
	}

	if cfg.Processing.PublishMode != PublishDirect || cfg.Transform.Backend != TransformLocal {
		t.Errorf("Unexpected modes %s %s", cfg.Processing.PublishMode, cfg.Transform.Backend)
	}

	if cfg.Processing.SignedURLTTL != 5*time.Minute {
		t.Errorf("Expected 5m signed url ttl, got %s", cfg.Processing.SignedURLTTL)
	}

	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Topic != "image-processed" {
		t.Errorf("Unexpected kafka config %+v", cfg.Kafka)
	}

	if !cfg.UsesPostgres() {
		t.Errorf("Expected postgres to be used")
	}

	if cfg.Bus.Backend != BusKafka || cfg.Topic() != "image-processed" {
		t.Errorf("Unexpected bus %s %s", cfg.Bus.Backend, cfg.Topic())
	}

	if cfg.Processing.MaxPixels != 40_000_000 || cfg.HTTP.BodyLimit <= maxUploadSize {
		t.Errorf("Unexpected limits %d %d", cfg.Processing.MaxPixels, cfg.HTTP.BodyLimit)
	}
}

func TestNew_PubSubBus(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("KAFKA_CONTROLLER_ENABLED", "false")
	t.Setenv("BUS_BACKEND", "pubsub")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")
	t.Setenv("PUBSUB_TOPIC", "processed")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Topic() != "processed" || cfg.PubSub.ProjectID != "proj" {
		t.Errorf("Unexpected pubsub config %+v", cfg.PubSub)
	}
}

func TestNew_RejectsBodyLimitAtUploadLimit(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_BODY_LIMIT", "10485760")

	_, err := New()
	if err == nil || !strings.Contains(err.Error(), "HTTP_BODY_LIMIT") {
		t.Errorf("Expected body limit to be rejected, got: %v", err)
	}
}

func TestNew_GCPBackends(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PG_URL", "")
	t.Setenv("STORAGE_BACKEND", "gcs")
	t.Setenv("STORAGE_BUCKET", "processed-images")
	t.Setenv("METADATA_BACKEND", "firestore")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")

	cfg, err := New()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.UsesPostgres() {
		t.Errorf("Expected postgres not to be used")
	}

	if cfg.GCS.Bucket != "processed-images" || cfg.Firestore.Collection != "image_metadata" {
		t.Errorf("Unexpected gcp config %+v %+v", cfg.GCS, cfg.Firestore)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Storage:         Storage{Backend: "ftp"},
		Metadata:        Metadata{Backend: "firestore"},
		Processing:      Processing{PublishMode: "outbox"},
		Transform:       Transform{Backend: "magic"},
		Bus:             Bus{Backend: "pubsub"},
		KafkaController: KafkaController{Enabled: true, Workers: 1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}

	for _, part := range []string{
		"STORAGE_BACKEND", "GOOGLE_CLOUD_PROJECT", "PUBLISH_MODE=outbox", "TRANSFORM_BACKEND", "SIGNED_URL_TTL",
		"pubsub bus", "KAFKA_BROKERS", "HTTP_BODY_LIMIT", "PROCESSING_MAX_PIXELS",
	} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("Expected error to mention %s, got: %v", part, err)
		}
	}
}

func TestNewFunction(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("METADATA_BACKEND", "firestore")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")

	cfg, err := NewFunction()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Firestore.ProjectID != "proj" {
		t.Errorf("Unexpected project %s", cfg.Firestore.ProjectID)
	}

	t.Setenv("METADATA_BACKEND", "postgres")
	t.Setenv("PG_URL", "")

	if _, err = NewFunction(); err == nil {
		t.Errorf("Expected missing PG_URL to be reported")
	}
}
