package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/common"
)

func TestBoltBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realm.db")
	backend, err := OpenBolt(path)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	_, err = backend.Get(ctx, SlotDiary)
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	require.NoError(t, backend.Put(ctx, SlotDiary, []byte(`[{"id":1}]`)))

	payload, err := backend.Get(ctx, SlotDiary)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), payload)

	require.NoError(t, backend.Delete(ctx, SlotDiary))
	_, err = backend.Get(ctx, SlotDiary)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestBoltBackend_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realm.db")
	ctx := context.Background()

	backend, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, backend.Put(ctx, SlotQuests, []byte(`[]`)))
	require.NoError(t, backend.Close())

	backend, err = OpenBolt(path)
	require.NoError(t, err)
	defer backend.Close()

	payload, err := backend.Get(ctx, SlotQuests)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
}
