package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Background-Remover/config"
	kafkactrl "github.com/andreyxaxa/Background-Remover/internal/controller/kafka"
	"github.com/andreyxaxa/Background-Remover/internal/controller/restapi"
	"github.com/andreyxaxa/Background-Remover/internal/controller/worker/outbox"
	"github.com/andreyxaxa/Background-Remover/internal/infrastructure"
	infrakafka "github.com/andreyxaxa/Background-Remover/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Background-Remover/internal/repo/persistent"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/metadata"
	outboxuc "github.com/andreyxaxa/Background-Remover/internal/usecase/outbox"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/processing"
	"github.com/andreyxaxa/Background-Remover/pkg/httpserver"
	"github.com/andreyxaxa/Background-Remover/pkg/kafka/consumer"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/postgres"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// postgres
	var pg *postgres.Postgres
	if cfg.UsesPostgres() {
		var err error

		pg, err = postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
		}
		defer pg.Close()
	}

	// artifacts: s3 or gcs
	store, closeStore, err := newArtifactStore(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newArtifactStore: %w", err))
	}
	defer closeStore()

	// metadata: postgres or firestore
	sink, closeSink, err := NewMetadataSink(ctx, cfg.Metadata.Backend, pg, cfg.Firestore)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - NewMetadataSink: %w", err))
	}
	defer closeSink()

	// Bus: kafka or pubsub
	bus, err := newEventBus(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newEventBus: %w", err))
	}

	// Publisher: straight to the bus, or through the outbox table
	var (
		publisher         infrastructure.EventPublisher = bus
		outboxRelayWorker *outbox.OutboxRelay
	)

	if cfg.Processing.PublishMode == config.PublishOutbox {
		outboxUseCase := outboxuc.New(persistent.NewOutboxPostgresRepo(pg), l)
		publisher = outboxUseCase

		// Outbox Relay Worker
		outboxRelayWorker = outbox.New(
			outboxUseCase,
			bus,
			l,
			cfg.OutboxRelay.PollInterval,
			cfg.OutboxRelay.CleanupInterval,
			cfg.OutboxRelay.MarkFailedInterval,
			cfg.OutboxRelay.ProcessBatchTimeout,
			cfg.OutboxRelay.BatchSize,
			cfg.OutboxRelay.MaxRetries,
		)
	}

	// Use-Case
	commitHandler := metadata.New(sink, l)

	coordinator := processing.New(
		newRemover(cfg.Transform),
		store,
		publisher,
		commitHandler,
		l,
		processing.SignedURLTTL(cfg.Processing.SignedURLTTL),
		processing.MaxPixels(cfg.Processing.MaxPixels),
		processing.Topic(cfg.Topic()),
	)

	// Kafka as Controller
	var kafkaController *kafkactrl.KafkaController
	if cfg.KafkaController.Enabled {
		kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
		}

		kafkaController = kafkactrl.New(
			commitHandler,
			infrakafka.NewEventConsumer(kafkaConsumer),
			l,
			cfg.KafkaController.CommitTimeout,
			cfg.KafkaController.ProcessTimeout,
			cfg.KafkaController.RetryBackoff,
			cfg.KafkaController.MaxRetryBackoff,
			cfg.KafkaController.Workers,
		)
	}

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
	)
	restapi.NewRouter(httpServer.App, cfg, coordinator, l)

	// Start Components
	if outboxRelayWorker != nil {
		err = outboxRelayWorker.Start(ctx)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - outboxRelayWorker.Start: %w", err))
		}
	}
	if kafkaController != nil {
		err = kafkaController.Start(ctx)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - kafkaController.Start: %w", err))
		}
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	if outboxRelayWorker != nil {
		// closes the bus as well
		orlShutdownCtx, orlShutdownCancel := context.WithTimeout(ctx, cfg.OutboxRelay.ShutdownTimeout)
		defer orlShutdownCancel()
		err = outboxRelayWorker.Shutdown(orlShutdownCtx)
		if err != nil {
			l.Error(fmt.Errorf("app - Run - outboxRelayWorker.Shutdown: %w", err))
		}
	} else {
		err = bus.Close()
		if err != nil {
			l.Error(fmt.Errorf("app - Run - bus.Close: %w", err))
		}
	}

	if kafkaController != nil {
		kcShutdownCtx, kcShutdownCancel := context.WithTimeout(ctx, cfg.KafkaController.ShutdownTimeout)
		defer kcShutdownCancel()
		err = kafkaController.Shutdown(kcShutdownCtx)
		if err != nil {
			l.Error(fmt.Errorf("app - Run - kafkaController.Shutdown: %w", err))
		}
	}
}
