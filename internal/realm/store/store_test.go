package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

func newTodoStore(t *testing.T) (*Store[models.TodoItem], *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	return New[models.TodoItem](backend, SlotTodos), backend
}

func TestStore_LoadEmptyWhenAbsent(t *testing.T) {
	s, _ := newTodoStore(t)

	list, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestStore_AddPrepends(t *testing.T) {
	s, _ := newTodoStore(t)
	ctx := context.Background()

	first := models.TodoItem{ID: 1, Text: "slay the wyrm"}
	second := models.TodoItem{ID: 2, Text: "polish scales"}

	list, err := s.Add(ctx, first)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = s.Add(ctx, second)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
}

func TestStore_RemoveExisting(t *testing.T) {
	s, _ := newTodoStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, models.TodoItem{ID: 1, Text: "a"})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.TodoItem{ID: 2, Text: "b"})
	require.NoError(t, err)

	list, err := s.Remove(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	// persisted
	list, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestStore_RemoveUnknownIsNoop(t *testing.T) {
	s, _ := newTodoStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, models.TodoItem{ID: 1, Text: "a"})
	require.NoError(t, err)

	list, err := s.Remove(ctx, 99)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_UpdateToggles(t *testing.T) {
	s, _ := newTodoStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, models.TodoItem{ID: 7, Text: "train"})
	require.NoError(t, err)

	list, err := s.Update(ctx, 7, func(item *models.TodoItem) {
		item.Completed = !item.Completed
	})
	require.NoError(t, err)
	assert.True(t, list[0].Completed)

	list, err = s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].Completed)
}

func TestStore_UpdateUnknownIsNoop(t *testing.T) {
	s, _ := newTodoStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, models.TodoItem{ID: 7, Text: "train"})
	require.NoError(t, err)

	list, err := s.Update(ctx, 8, func(item *models.TodoItem) {
		item.Completed = true
	})
	require.NoError(t, err)
	assert.False(t, list[0].Completed)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	backend := NewMemoryBackend()
	s := New[models.Quest](backend, SlotQuests)
	ctx := context.Background()

	quests := []models.Quest{
		{ID: 2, Text: "find the hoard", Difficulty: models.DifficultyHard, Category: models.CategoryExploration, Timestamp: "1/2/2025, 3:04:05 PM"},
		{ID: 1, Text: "read the runes", Completed: true, Difficulty: models.DifficultyEasy, Category: models.CategoryWisdom, Timestamp: "1/1/2025, 1:00:00 PM"},
	}
	require.NoError(t, s.Save(ctx, quests))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(quests, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MalformedPayloadLoadsEmpty(t *testing.T) {
	s, backend := newTodoStore(t)
	ctx := context.Background()

	require.NoError(t, backend.Put(ctx, SlotTodos, []byte("{not json")))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestValueSlots(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	_, ok, err := LoadValue[bool](ctx, backend, SlotLoggedIn)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SaveValue(ctx, backend, SlotLoggedIn, true))

	loggedIn, ok, err := LoadValue[bool](ctx, backend, SlotLoggedIn)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, loggedIn)

	require.NoError(t, backend.Delete(ctx, SlotLoggedIn))
	_, ok, err = LoadValue[bool](ctx, backend, SlotLoggedIn)
	require.NoError(t, err)
	assert.False(t, ok)
}
