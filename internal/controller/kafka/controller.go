package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	kafkapc "github.com/andreyxaxa/Background-Remover/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/metadata"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/segmentio/kafka-go"
)

type EventReader interface {
	ReadEvent(ctx context.Context) (kafka.Message, error)
	CommitEvent(ctx context.Context, event kafka.Message) error
	Close() error
}

// KafkaController feeds processing events to the metadata stage. Messages of
// one partition always go to the same worker, so an offset is never committed
// past a message that is still waiting for a retry.
type KafkaController struct {
	meta   usecase.MetadataUseCase
	er     EventReader
	logger logger.Interface

	commitTimeout   time.Duration
	processTimeout  time.Duration
	retryBackoff    time.Duration
	maxRetryBackoff time.Duration

	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started atomic.Bool
}

func New(
	meta usecase.MetadataUseCase,
	er EventReader,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	retryBackoff time.Duration,
	maxRetryBackoff time.Duration,
	workers int,
) *KafkaController {
	if workers < 1 {
		workers = 1
	}

	return &KafkaController{
		meta:            meta,
		er:              er,
		logger:          l,
		commitTimeout:   commitTimeout,
		processTimeout:  processTimeout,
		retryBackoff:    retryBackoff,
		maxRetryBackoff: maxRetryBackoff,
		workers:         workers,
	}
}

func (c *KafkaController) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("KafkaController - Start - controller already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	tasks := make([]chan kafka.Message, c.workers)
	for i := range tasks {
		tasks[i] = make(chan kafka.Message, 2)

		c.wg.Add(1)
		go c.worker(tasks[i])
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			for _, t := range tasks {
				close(t)
			}
		}()

		for {
			// 1. read
			event, err := c.er.ReadEvent(c.ctx)
			if err != nil {
				if c.ctx.Err() != nil {
					return
				}
				c.logger.Error(err, "KafkaController - Start - c.er.ReadEvent")

				if !c.sleep(c.retryBackoff) {
					return
				}
				continue
			}

			// 2. dispatch by partition
			select {
			case tasks[event.Partition%c.workers] <- event:
			case <-c.ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (c *KafkaController) worker(tasks <-chan kafka.Message) {
	defer c.wg.Done()

	for event := range tasks {
		if !c.handle(event) {
			// shutting down; uncommitted offsets are redelivered to the next consumer
			continue
		}

		// finished events still commit while the controller is stopping
		commitCtx, commitCancel := context.WithTimeout(context.WithoutCancel(c.ctx), c.commitTimeout)
		err := c.er.CommitEvent(commitCtx, event)
		commitCancel()
		if err != nil {
			c.logger.Error(err, "KafkaController - worker - c.er.CommitEvent")
		}
	}
}

// handle runs the metadata stage until the event is committed or rejected.
// It returns false if the controller stopped while the event was pending.
func (c *KafkaController) handle(event kafka.Message) bool {
	if v := kafkapc.Header(event, entity.HeaderSchemaVersion); !entity.SupportedSchemaVersion(v) {
		c.logger.Warn("KafkaController - handle - dropping offset %d: %v %q", event.Offset, errs.ErrUnsupportedSchema, v)

		return true
	}

	backoff := c.retryBackoff

	for {
		err := c.process(event)

		outcome := metadata.OutcomeOf(err)
		switch outcome {
		case metadata.Committed:
			return true
		case metadata.Rejected:
			c.logger.Error(err, "KafkaController - handle - event rejected", event.Partition, event.Offset)
			return true
		}

		c.logger.Error(err, "KafkaController - handle - retry in", backoff)

		if !c.sleep(backoff) {
			return false
		}

		backoff *= 2
		if backoff > c.maxRetryBackoff {
			backoff = c.maxRetryBackoff
		}
	}
}

func (c *KafkaController) process(event kafka.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("KafkaController - process - panic: %v: %w", r, errs.ErrSinkUnavailable)
		}
	}()

	processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
	defer processCancel()

	err = c.meta.OnEvent(processCtx, event.Value)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && !errs.Retryable(err) {
		err = fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}

	return err
}

func (c *KafkaController) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (c *KafkaController) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan error, 1)

	go func() {
		c.wg.Wait()
		done <- c.er.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("KafkaController - Shutdown - c.er.Close: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("KafkaController - Shutdown: %w", ctx.Err())
	}
}
