package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/andreyxaxa/Background-Remover/config"
	"github.com/andreyxaxa/Background-Remover/internal/app"
	"github.com/andreyxaxa/Background-Remover/internal/controller/cloudevent"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/metadata"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/postgres"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/joho/godotenv"
)

var (
	handler *cloudevent.Handler
	once    sync.Once
	initErr error
)

func init() {
	// Entry point name configured for the push subscription trigger.
	functions.CloudEvent("CommitMetadata", commitMetadata)
}

func main() {
	if _, err := os.Stat(".env"); err == nil {
		err = godotenv.Load()
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %s", err)
	}
}

func commitMetadata(ctx context.Context, e cloudevents.Event) error {
	// clients are created once per instance, on the first delivery
	once.Do(func() {
		handler, initErr = newHandler(context.Background())
	})
	if initErr != nil {
		log.Printf("metadata-function - init: %s", initErr)

		return initErr
	}

	return handler.Handle(ctx, e)
}

func newHandler(ctx context.Context) (*cloudevent.Handler, error) {
	cfg, err := config.NewFunction()
	if err != nil {
		return nil, err
	}

	l := logger.New(cfg.Log.Level)

	var pg *postgres.Postgres
	if cfg.Metadata.Backend == config.MetadataPostgres {
		pg, err = postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
		if err != nil {
			return nil, fmt.Errorf("metadata-function - newHandler - postgres.New: %w", err)
		}
	}

	// lives as long as the instance
	sink, _, err := app.NewMetadataSink(ctx, cfg.Metadata.Backend, pg, cfg.Firestore)
	if err != nil {
		return nil, fmt.Errorf("metadata-function - newHandler - app.NewMetadataSink: %w", err)
	}

	return cloudevent.New(metadata.New(sink, l), l), nil
}
