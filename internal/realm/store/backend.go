// Package store implements the slot-backed entry store. Each feature owns one
// named slot holding the JSON-serialized form of its full entry list; every
// mutation rewrites the slot wholesale, so the slot is always the single
// source of truth.
package store

import "context"

// Slot keys. One per feature, plus the session flag and token.
const (
	SlotDiary    = "diaryEntries"
	SlotTodos    = "todos"
	SlotQuests   = "quests"
	SlotDiet     = "dietEntries"
	SlotLoggedIn = "isLoggedIn"
	SlotToken    = "token"
)

// Backend persists raw slot payloads. Implementations: in-memory map, bbolt
// bucket, SQL slots table.
type Backend interface {
	// Get returns the payload stored under key, or common.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the payload stored under key.
	Put(ctx context.Context, key string, payload []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
