package documents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return NewService(NewInMemoryRepository(), NewMemoryObjectStore(), func() time.Time { return now })
}

func TestService_UploadListDownloadDelete(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	content := []byte("ancient draconic lore")

	doc, err := s.Upload(ctx, 1, "lore.txt", content)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "6/15/2025", doc.UploadDate)
	assert.Equal(t, "21 B", doc.Size)

	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, doc.ID, list[0].ID)

	got, data, err := s.Download(ctx, 1, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "lore.txt", got.Name)
	assert.Equal(t, content, data)

	require.NoError(t, s.Delete(ctx, 1, doc.ID))

	list, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, _, err = s.Download(ctx, 1, doc.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestService_ListIsPerUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, 1, "mine.txt", []byte("a"))
	require.NoError(t, err)

	list, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_NewestFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, 1, "first.txt", []byte("a"))
	require.NoError(t, err)
	_, err = s.Upload(ctx, 1, "second.txt", []byte("b"))
	require.NoError(t, err)

	list, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second.txt", list[0].Name)
}

func TestService_BlankNameRejected(t *testing.T) {
	s := newTestService(t)

	_, err := s.Upload(context.Background(), 1, "  ", []byte("a"))
	assert.ErrorIs(t, err, common.ErrEmptyInput)
}

func TestService_DeleteUnknown(t *testing.T) {
	s := newTestService(t)

	err := s.Delete(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "2.0 MB", formatSize(2<<20))
}
