package mock_repo

import (
	context "context"
	"sync"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
)

// MemoryMetadataSink is an idempotent in-memory MetadataSink. The first
// commit time of a record survives later upserts.
type MemoryMetadataSink struct {
	records map[uuid.UUID]entity.MetadataRecord
	lock    sync.Mutex
	err     error
	upserts int
	now     func() time.Time
}

var _ repo.MetadataSink = (*MemoryMetadataSink)(nil)

func NewMemoryMetadataSink() *MemoryMetadataSink {
	return &MemoryMetadataSink{
		records: make(map[uuid.UUID]entity.MetadataRecord),
		now:     time.Now,
	}
}

func (s *MemoryMetadataSink) ReturnError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.err = err
}

func (s *MemoryMetadataSink) Upsert(ctx context.Context, record *entity.MetadataRecord) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.upserts++

	if s.err != nil {
		return s.err
	}

	stored := *record
	stored.Tags = append([]string{}, record.Tags...)

	if prev, exists := s.records[record.ImageID]; exists {
		stored.ProcessedAt = prev.ProcessedAt
	} else {
		at := s.now().UTC()
		stored.ProcessedAt = &at
	}

	s.records[record.ImageID] = stored
	record.ProcessedAt = stored.ProcessedAt

	return nil
}

func (s *MemoryMetadataSink) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	record, exists := s.records[id]
	if !exists {
		return nil, errs.ErrRecordNotFound
	}

	return &record, nil
}

func (s *MemoryMetadataSink) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.records)
}

func (s *MemoryMetadataSink) Upserts() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.upserts
}
