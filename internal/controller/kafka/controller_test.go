package kafka

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	mock_usecase "github.com/andreyxaxa/Background-Remover/internal/usecase/mocks"
	"github.com/andreyxaxa/Background-Remover/pkg/logger"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
)

// fakeReader serves a fixed list of messages and then blocks until ctx ends.
type fakeReader struct {
	lock      sync.Mutex
	messages  []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) ReadEvent(ctx context.Context) (kafka.Message, error) {
	r.lock.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.lock.Unlock()

		return msg, nil
	}
	r.lock.Unlock()

	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitEvent(ctx context.Context, event kafka.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.committed = append(r.committed, event.Offset)

	return nil
}

func (r *fakeReader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.closed = true

	return nil
}

func (r *fakeReader) Committed() []int64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]int64{}, r.committed...)
}

func message(offset int64, headers ...kafka.Header) kafka.Message {
	return kafka.Message{
		Partition: 0,
		Offset:    offset,
		Value:     []byte(fmt.Sprintf("payload-%d", offset)),
		Headers:   headers,
	}
}

func newController(meta *mock_usecase.MockMetadataUseCase, r *fakeReader) *KafkaController {
	return New(meta, r, logger.Nop(), time.Second, time.Second, time.Millisecond, 4*time.Millisecond, 2)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestKafkaController_CommitsAfterSuccessfulHandling(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(1), message(2)}}

	meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-1")).Return(nil)
	meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-2")).Return(nil)

	c := newController(meta, reader)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	waitFor(t, func() bool { return len(reader.Committed()) == 2 })

	if err := c.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got: %v", err)
	}

	if got := reader.Committed(); got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected offsets committed in order, got %v", got)
	}

	if !reader.closed {
		t.Errorf("Expected reader to be closed")
	}
}

func TestKafkaController_RetriesTransientFailuresBeforeCommitting(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(7), message(8)}}

	transient := fmt.Errorf("pool exhausted: %w", errs.ErrSinkUnavailable)

	gomock.InOrder(
		meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-7")).Return(transient).Times(3),
		meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-7")).Return(nil),
		meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-8")).Return(nil),
	)

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	waitFor(t, func() bool { return len(reader.Committed()) == 2 })
	_ = c.Shutdown(context.Background())

	if got := reader.Committed(); got[0] != 7 || got[1] != 8 {
		t.Errorf("Expected 7 to be committed before 8, got %v", got)
	}
}

func TestKafkaController_AcknowledgesRejectedEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(3)}}

	meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Return(fmt.Errorf("bad: %w", errs.ErrMalformedEvent)).Times(1)

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	waitFor(t, func() bool { return len(reader.Committed()) == 1 })
	_ = c.Shutdown(context.Background())
}

func TestKafkaController_DropsUnsupportedSchemaVersion(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{
		message(4, kafka.Header{Key: "schema-version", Value: []byte("2")}),
		message(5, kafka.Header{Key: "schema-version", Value: []byte("1")}),
	}}

	meta.EXPECT().OnEvent(gomock.Any(), []byte("payload-5")).Return(nil).Times(1)

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	waitFor(t, func() bool { return len(reader.Committed()) == 2 })
	_ = c.Shutdown(context.Background())
}

func TestKafkaController_DoesNotCommitPendingEventOnShutdown(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(9)}}

	called := make(chan struct{}, 1)
	meta.EXPECT().
		OnEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte) error {
			select {
			case called <- struct{}{}:
			default:
			}
			return errs.ErrSinkUnavailable
		}).
		MinTimes(1)

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	<-called

	if err := c.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got: %v", err)
	}

	if got := reader.Committed(); len(got) != 0 {
		t.Errorf("Expected nothing committed, got %v", got)
	}
}

func TestKafkaController_CommitsEventFinishedDuringShutdown(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(12)}}

	entered := make(chan struct{})
	meta.EXPECT().
		OnEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			close(entered)
			<-ctx.Done()
			// the write landed just as the controller stopped
			return nil
		})

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	<-entered

	if err := c.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got: %v", err)
	}

	if got := reader.Committed(); len(got) != 1 || got[0] != 12 {
		t.Errorf("Expected offset 12 committed, got %v", got)
	}
}

func TestKafkaController_RecoversFromHandlerPanic(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	meta := mock_usecase.NewMockMetadataUseCase(mockCtrl)
	reader := &fakeReader{messages: []kafka.Message{message(11)}}

	gomock.InOrder(
		meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Do(func(context.Context, []byte) { panic("boom") }),
		meta.EXPECT().OnEvent(gomock.Any(), gomock.Any()).Return(nil),
	)

	c := newController(meta, reader)
	_ = c.Start(context.Background())

	waitFor(t, func() bool { return len(reader.Committed()) == 1 })
	_ = c.Shutdown(context.Background())
}

func TestKafkaController_StartTwice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	c := newController(mock_usecase.NewMockMetadataUseCase(mockCtrl), &fakeReader{})

	_ = c.Start(context.Background())
	defer c.Shutdown(context.Background())

	if err := c.Start(context.Background()); err == nil {
		t.Errorf("Expected error on second start")
	}
}

func TestKafkaController_ShutdownWithoutStart(t *testing.T) {
	c := newController(nil, &fakeReader{})

	if err := c.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
