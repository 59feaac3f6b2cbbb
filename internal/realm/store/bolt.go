package store

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/karnadev/dragonsrealm/internal/common"
)

var slotsBucket = []byte("slots")

// BoltBackend stores slots in a single-bucket bbolt file. This is the default
// durable backend for the terminal client.
type BoltBackend struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the data file at path and ensures the slots
// bucket exists.
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slots bucket: %w", err)
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(slotsBucket).Get([]byte(key))
		if v == nil {
			return common.ErrorNotFound
		}
		payload = make([]byte, len(v))
		copy(payload, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (b *BoltBackend) Put(ctx context.Context, key string, payload []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(slotsBucket).Put([]byte(key), payload)
	})
}

func (b *BoltBackend) Delete(ctx context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(slotsBucket).Delete([]byte(key))
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
