package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
)

// Outcome is the terminal state of one delivery.
type Outcome int

const (
	// Committed: record stored, acknowledge.
	Committed Outcome = iota
	// Rejected: the event can never be stored, acknowledge and drop.
	Rejected
	// RetryPending: transient failure, leave unacknowledged for redelivery.
	RetryPending
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Rejected:
		return "rejected"
	case RetryPending:
		return "retry_pending"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Ack reports whether the delivery must be acknowledged.
func (o Outcome) Ack() bool {
	return o != RetryPending
}

// OutcomeOf maps an OnEvent result to its delivery outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Committed
	case errs.Retryable(err):
		return RetryPending
	default:
		return Rejected
	}
}

// CommitHandler turns processing events into metadata records. It is safe
// for concurrent and repeated delivery of the same event.
type CommitHandler struct {
	sink   repo.MetadataSink
	logger logger.Interface
}

func New(sink repo.MetadataSink, l logger.Interface) *CommitHandler {
	return &CommitHandler{sink: sink, logger: l}
}

func (h *CommitHandler) OnEvent(ctx context.Context, payload []byte) error {
	event, err := entity.DecodeProcessingEvent(payload)
	if err != nil {
		h.logger.Warn("CommitHandler - OnEvent - dropping malformed event: %v", err)

		return fmt.Errorf("CommitHandler - OnEvent - entity.DecodeProcessingEvent: %w: %w", errs.ErrMalformedEvent, err)
	}

	record := entity.NewMetadataRecord(event)

	err = h.sink.Upsert(ctx, record)
	if err != nil {
		if errors.Is(err, errs.ErrRecordRejected) {
			h.logger.Error(err, "CommitHandler - OnEvent - record rejected, dropping", event.ImageID)

			return fmt.Errorf("CommitHandler - OnEvent - h.sink.Upsert: %w", err)
		}

		if !errors.Is(err, errs.ErrSinkUnavailable) {
			err = fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
		}

		return fmt.Errorf("CommitHandler - OnEvent - h.sink.Upsert: %w", err)
	}

	h.logger.Info("CommitHandler - OnEvent - committed image %s", event.ImageID)

	return nil
}

func (h *CommitHandler) Get(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error) {
	record, err := h.sink.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("CommitHandler - Get - h.sink.GetByID: %w", err)
	}

	return record, nil
}
