package cloudevent_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/andreyxaxa/Background-Remover/internal/controller/cloudevent"
	mock_usecase "github.com/andreyxaxa/Background-Remover/internal/usecase/mocks"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/golang/mock/gomock"
)

const eventPayload = `{"image_id":"0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10","original_name":"a.png","storage_path":"gs://b/processed/0b8a6c0e-4d5e-4a44-9c59-6a3c6d1f2a10.png","tags":["background-removed"]}`

func pushEvent(t *testing.T, attributes string) cloudevents.Event {
	t.Helper()

	e := cloudevents.NewEvent()
	e.SetID("1")
	e.SetSource("//pubsub.googleapis.com/projects/p/topics/image-processed")
	e.SetType("google.cloud.pubsub.topic.v1.messagePublished")

	data := fmt.Sprintf(
		`{"message":{"data":%q,"attributes":%s,"messageId":"42"},"subscription":"projects/p/subscriptions/metadata"}`,
		base64.StdEncoding.EncodeToString([]byte(eventPayload)), attributes,
	)

	if err := e.SetData(cloudevents.ApplicationJSON, []byte(data)); err != nil {
		t.Fatalf("Failed to set event data: %v", err)
	}

	return e
}

func TestHandler_DecodesEnvelopeAndAcknowledges(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	meta.EXPECT().OnEvent(gomock.Any(), []byte(eventPayload)).Return(nil)

	err := cloudevent.New(meta, logger.Nop()).Handle(context.Background(), pushEvent(t, `{"schema-version":"1"}`))
	if err != nil {
		t.Errorf("Expected ack, got: %v", err)
	}
}

func TestHandler_RequestsRedeliveryOnTransientFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Return(fmt.Errorf("timeout: %w", errs.ErrSinkUnavailable))

	err := cloudevent.New(meta, logger.Nop()).Handle(context.Background(), pushEvent(t, `{}`))
	if !errors.Is(err, errs.ErrSinkUnavailable) {
		t.Errorf("Expected ErrSinkUnavailable, got: %v", err)
	}
}

func TestHandler_AcknowledgesPermanentFailures(t *testing.T) {
	for _, cause := range []error{errs.ErrMalformedEvent, errs.ErrRecordRejected} {
		mockCtrl := gomock.NewController(t)
		meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
		meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Return(cause)

		err := cloudevent.New(meta, logger.Nop()).Handle(context.Background(), pushEvent(t, `{}`))
		if err != nil {
			t.Errorf("Expected %v to be acknowledged, got: %v", cause, err)
		}
	}
}

func TestHandler_DropsUnsupportedSchemaVersion(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Times(0)

	err := cloudevent.New(meta, logger.Nop()).Handle(context.Background(), pushEvent(t, `{"schema-version":"7"}`))
	if err != nil {
		t.Errorf("Expected ack, got: %v", err)
	}
}

func TestHandler_DropsUnparsableEnvelope(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Times(0)

	e := cloudevents.NewEvent()
	e.SetID("2")
	e.SetSource("test")
	e.SetType("test")
	_ = e.SetData(cloudevents.TextPlain, []byte("not json"))

	err := cloudevent.New(meta, logger.Nop()).Handle(context.Background(), e)
	if err != nil {
		t.Errorf("Expected ack, got: %v", err)
	}
}
