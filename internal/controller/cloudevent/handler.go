package cloudevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/internal/usecase"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/metadata"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// PushEnvelope is the data of a Pub/Sub message published CloudEvent.
type PushEnvelope struct {
	Message struct {
		// Data is base64 in JSON; encoding/json decodes it into raw bytes.
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Handler is the metadata stage behind a push subscription. A nil return
// acknowledges the delivery, an error asks the platform to redeliver.
type Handler struct {
	meta   usecase.MetadataUseCase
	logger logger.Interface
}

func New(meta usecase.MetadataUseCase, l logger.Interface) *Handler {
	return &Handler{meta: meta, logger: l}
}

func (h *Handler) Handle(ctx context.Context, e cloudevents.Event) error {
	var envelope PushEnvelope
	if err := json.Unmarshal(e.Data(), &envelope); err != nil {
		// redelivery cannot fix an envelope that does not parse
		h.logger.Warn("cloudevent - Handle - dropping event %s: %v: %v", e.ID(), errs.ErrMalformedEvent, err)

		return nil
	}

	if v := envelope.Message.Attributes[entity.HeaderSchemaVersion]; !entity.SupportedSchemaVersion(v) {
		h.logger.Warn("cloudevent - Handle - dropping message %s: %v %q", envelope.Message.MessageID, errs.ErrUnsupportedSchema, v)

		return nil
	}

	err := h.meta.OnEvent(ctx, envelope.Message.Data)
	if metadata.OutcomeOf(err).Ack() {
		return nil
	}

	return fmt.Errorf("cloudevent - Handle - h.meta.OnEvent: %w", err)
}
