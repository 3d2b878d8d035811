package metadata_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	mock_repo "github.com/andreyxaxa/Background-Remover/internal/repo/mocks"
	"github.com/andreyxaxa/Background-Remover/internal/usecase/metadata"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func payload(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf(
		`{"image_id":"%s","original_name":"cat.jpg","storage_path":"gs://bucket/processed/%s.png","tags":["background-removed"]}`,
		id, id,
	))
}

func TestCommitHandler_OnEventCommitsRecord(t *testing.T) {
	sink := mock_repo.NewMemoryMetadataSink()
	handler := metadata.New(sink, logger.Nop())
	id := uuid.New()

	err := handler.OnEvent(context.Background(), payload(id))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	record, err := handler.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Expected record, got: %v", err)
	}

	if record.OriginalName != "cat.jpg" || record.Status != entity.StatusProcessed {
		t.Errorf("Unexpected record: %+v", record)
	}

	if record.StoragePath != fmt.Sprintf("gs://bucket/processed/%s.png", id) {
		t.Errorf("Unexpected storage path %s", record.StoragePath)
	}

	if record.ProcessedAt == nil {
		t.Errorf("Expected processed at to be set")
	}
}

func TestCommitHandler_OnEventIsIdempotent(t *testing.T) {
	sink := mock_repo.NewMemoryMetadataSink()
	handler := metadata.New(sink, logger.Nop())
	id := uuid.New()

	if err := handler.OnEvent(context.Background(), payload(id)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	first, _ := handler.Get(context.Background(), id)

	time.Sleep(time.Millisecond)

	if err := handler.OnEvent(context.Background(), payload(id)); err != nil {
		t.Fatalf("Expected no error on redelivery, got: %v", err)
	}
	second, _ := handler.Get(context.Background(), id)

	if sink.Len() != 1 {
		t.Errorf("Expected exactly one record, got %d", sink.Len())
	}

	if !first.ProcessedAt.Equal(*second.ProcessedAt) {
		t.Errorf("Expected processed at to survive redelivery, got %v and %v", first.ProcessedAt, second.ProcessedAt)
	}
}

func TestCommitHandler_OnEventConcurrentDuplicates(t *testing.T) {
	sink := mock_repo.NewMemoryMetadataSink()
	handler := metadata.New(sink, logger.Nop())
	id := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := handler.OnEvent(context.Background(), payload(id)); err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		}()
	}
	wg.Wait()

	if sink.Len() != 1 {
		t.Errorf("Expected exactly one record, got %d", sink.Len())
	}
}

func TestCommitHandler_OnEventDropsMalformedPayload(t *testing.T) {
	payloads := map[string][]byte{
		"not json":         []byte("{{{"),
		"missing id":       []byte(`{"original_name":"a","storage_path":"gs://b/k","tags":[]}`),
		"invalid id":       []byte(`{"image_id":"nope","storage_path":"gs://b/k"}`),
		"missing location": []byte(fmt.Sprintf(`{"image_id":"%s"}`, uuid.New())),
		"empty":            nil,
	}

	for name, p := range payloads {
		mockCtrl := gomock.NewController(t)
		sink := mock_repo.NewMockMetadataSink(mockCtrl)
		sink.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		err := metadata.New(sink, logger.Nop()).OnEvent(context.Background(), p)
		if !errors.Is(err, errs.ErrMalformedEvent) {
			t.Errorf("%s: expected ErrMalformedEvent, got: %v", name, err)
		}

		if outcome := metadata.OutcomeOf(err); outcome != metadata.Rejected || !outcome.Ack() {
			t.Errorf("%s: expected acknowledged rejection, got %s", name, outcome)
		}
	}
}

func TestCommitHandler_OnEventLeavesTransientFailuresForRedelivery(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	sink := mock_repo.NewMockMetadataSink(mockCtrl)
	sink.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	err := metadata.New(sink, logger.Nop()).OnEvent(context.Background(), payload(uuid.New()))
	if !errors.Is(err, errs.ErrSinkUnavailable) {
		t.Errorf("Expected ErrSinkUnavailable, got: %v", err)
	}

	if outcome := metadata.OutcomeOf(err); outcome != metadata.RetryPending || outcome.Ack() {
		t.Errorf("Expected unacknowledged retry, got %s", outcome)
	}
}

func TestCommitHandler_OnEventDropsRejectedRecords(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	sink := mock_repo.NewMockMetadataSink(mockCtrl)
	sink.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("value too long: %w", errs.ErrRecordRejected))

	err := metadata.New(sink, logger.Nop()).OnEvent(context.Background(), payload(uuid.New()))
	if !errors.Is(err, errs.ErrRecordRejected) || errs.Retryable(err) {
		t.Errorf("Expected non retryable ErrRecordRejected, got: %v", err)
	}

	if metadata.OutcomeOf(err) != metadata.Rejected {
		t.Errorf("Expected rejected outcome, got %s", metadata.OutcomeOf(err))
	}
}

func TestCommitHandler_OnEventPassesRecordToSink(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	sink := mock_repo.NewMockMetadataSink(mockCtrl)
	id := uuid.New()

	sink.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *entity.MetadataRecord) error {
			if record.ImageID != id {
				t.Errorf("Expected id %s, got %s", id, record.ImageID)
			}
			if len(record.Tags) != 1 || record.Tags[0] != entity.TagBackgroundRemoved {
				t.Errorf("Unexpected tags %v", record.Tags)
			}
			return nil
		})

	err := metadata.New(sink, logger.Nop()).OnEvent(context.Background(), payload(id))
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

type infoRecorder struct {
	logger.Interface
	lines []string
}

func (l *infoRecorder) Info(message string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(message, args...))
}

func TestCommitHandler_OnEventLogsCommit(t *testing.T) {
	l := &infoRecorder{Interface: logger.Nop()}
	id := uuid.New()

	if err := metadata.New(mock_repo.NewMemoryMetadataSink(), l).OnEvent(context.Background(), payload(id)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(l.lines) != 1 || l.lines[0] != fmt.Sprintf("CommitHandler - OnEvent - committed image %s", id) {
		t.Errorf("Unexpected log lines %q", l.lines)
	}
}

func TestOutcome_String(t *testing.T) {
	cases := map[metadata.Outcome]string{
		metadata.Committed:    "committed",
		metadata.Rejected:     "rejected",
		metadata.RetryPending: "retry_pending",
		metadata.Outcome(42):  "outcome(42)",
	}

	for outcome, expected := range cases {
		if outcome.String() != expected {
			t.Errorf("Expected %s, got %s", expected, outcome.String())
		}
	}
}
