package mock_repo

import (
	context "context"
	"fmt"
	"sync"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/repo"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
)

type StoredObject struct {
	Data        []byte
	ContentType string
	Tags        map[string]string
}

// MemoryArtifactStore keeps objects in a map and signs urls with a fake host.
type MemoryArtifactStore struct {
	bucket  string
	objects map[string]StoredObject
	lock    sync.Mutex

	putErr  error
	signErr error
	puts    int
}

var _ repo.ArtifactStore = (*MemoryArtifactStore)(nil)

func NewMemoryArtifactStore(bucket string) *MemoryArtifactStore {
	return &MemoryArtifactStore{
		bucket:  bucket,
		objects: make(map[string]StoredObject),
	}
}

func (s *MemoryArtifactStore) ReturnPutError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.putErr = err
}

func (s *MemoryArtifactStore) ReturnSignError(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.signErr = err
}

func (s *MemoryArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string, tags map[string]string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.puts++

	if s.putErr != nil {
		return s.putErr
	}

	if _, exists := s.objects[key]; exists {
		return fmt.Errorf("MemoryArtifactStore - Put: %s: %w", key, errs.ErrArtifactExists)
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.objects[key] = StoredObject{Data: buf, ContentType: contentType, Tags: tags}

	return nil
}

func (s *MemoryArtifactStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.signErr != nil {
		return "", s.signErr
	}

	if _, exists := s.objects[key]; !exists {
		return "", fmt.Errorf("object %s not found", key)
	}

	return fmt.Sprintf("https://storage.test/%s/%s?expires=%d", s.bucket, key, int64(ttl.Seconds())), nil
}

func (s *MemoryArtifactStore) Location(key string) string {
	return fmt.Sprintf("mem://%s/%s", s.bucket, key)
}

func (s *MemoryArtifactStore) Object(key string) (StoredObject, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	obj, ok := s.objects[key]

	return obj, ok
}

func (s *MemoryArtifactStore) Keys() []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}

	return keys
}

// Puts counts every Put call, failed ones included.
func (s *MemoryArtifactStore) Puts() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.puts
}
