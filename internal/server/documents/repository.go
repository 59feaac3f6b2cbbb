package documents

import (
	"context"
	"sync"

	"github.com/karnadev/dragonsrealm/internal/common"
)

// Repository stores document metadata per user id.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Document, error)
	Get(ctx context.Context, userID int64, docID string) (*Document, error)
	Add(ctx context.Context, userID int64, doc Document) error
	Delete(ctx context.Context, userID int64, docID string) error
}

// InMemoryRepository keeps metadata in a per-user map, newest first.
type InMemoryRepository struct {
	mu   sync.RWMutex
	docs map[int64][]Document
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{docs: make(map[int64][]Document)}
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.docs[userID]
	out := make([]Document, len(list))
	copy(out, list)
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID int64, docID string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.docs[userID] {
		if d.ID == docID {
			doc := d
			return &doc, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Add(ctx context.Context, userID int64, doc Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[userID] = append([]Document{doc}, r.docs[userID]...)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID int64, docID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.docs[userID]
	for i, d := range list {
		if d.ID == docID {
			r.docs[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
