package documents

import (
	"context"
	"sync"

	"github.com/karnadev/dragonsrealm/internal/common"
)

// ObjectStore holds document content by storage key.
type ObjectStore interface {
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// MemoryObjectStore is the default content store. Content is gone when the
// process exits; durability is explicitly out of scope.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string][]byte)}
}

func (s *MemoryObjectStore) Put(ctx context.Context, key string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(content))
	copy(stored, content)
	s.objects[key] = stored
	return nil
}

func (s *MemoryObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.objects[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (s *MemoryObjectStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
