package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/karnadev/dragonsrealm/internal/common"
)

// Record is anything the store can hold: an entry with a unique id.
type Record interface {
	Key() int64
}

// Store binds one record type to one slot. All operations are synchronous
// read-modify-write cycles over the full list; new entries are prepended so
// the list stays most-recent-first.
type Store[T Record] struct {
	backend Backend
	slot    string
}

// New returns a store over the given slot.
func New[T Record](backend Backend, slot string) *Store[T] {
	return &Store[T]{backend: backend, slot: slot}
}

// Load reads and deserializes the slot. An absent slot loads as an empty
// list. So does a corrupt one: a payload that no longer parses must not brick
// the feature, so the list starts over empty.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	payload, err := s.backend.Get(ctx, s.slot)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", s.slot, err)
	}

	var list []T
	if err := json.Unmarshal(payload, &list); err != nil {
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// Save serializes the full list and overwrites the slot.
func (s *Store[T]) Save(ctx context.Context, list []T) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to serialize slot %s: %w", s.slot, err)
	}
	if err := s.backend.Put(ctx, s.slot, payload); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.slot, err)
	}
	return nil
}

// Add prepends the entry and persists. The updated list is returned.
func (s *Store[T]) Add(ctx context.Context, item T) ([]T, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	list = append([]T{item}, list...)
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove filters out the entry with the given id and persists. Removing an
// unknown id is a no-op and does not rewrite the slot.
func (s *Store[T]) Remove(ctx context.Context, id int64) ([]T, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	kept := list[:0:0]
	for _, item := range list {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return list, nil
	}
	if kept == nil {
		kept = []T{}
	}
	if err := s.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Update applies fn to the entry with the given id and persists. Toggling
// completion is the only mutation callers perform. Unknown ids are a no-op.
func (s *Store[T]) Update(ctx context.Context, id int64, fn func(*T)) ([]T, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range list {
		if list[i].Key() == id {
			fn(&list[i])
			found = true
			break
		}
	}
	if !found {
		return list, nil
	}
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadValue reads a scalar slot such as the isLoggedIn flag. The second
// return value is false when the slot is absent or does not parse.
func LoadValue[V any](ctx context.Context, b Backend, key string) (V, bool, error) {
	var v V
	payload, err := b.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, false, nil
	}
	return v, true, nil
}

// SaveValue serializes a scalar value into a slot.
func SaveValue[V any](ctx context.Context, b Backend, key string, v V) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize slot %s: %w", key, err)
	}
	if err := b.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}
