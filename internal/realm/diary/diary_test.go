package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("tamed a hatchling", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.UnixMilli(), e.ID)
	assert.Equal(t, "2025-06-15", e.Date)
	assert.Equal(t, "tamed a hatchling", e.Content)
}

func TestNewEntry_BlankContentRejected(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := NewEntry(content, testNow)
		assert.ErrorIs(t, err, common.ErrEmptyInput)
	}
}

func TestDistinctDates_Descending(t *testing.T) {
	entries := []models.DiaryEntry{
		{ID: 4, Date: "2025-06-15"},
		{ID: 3, Date: "2025-06-10"},
		{ID: 2, Date: "2025-06-15"},
		{ID: 1, Date: "2025-06-12"},
	}

	dates := DistinctDates(entries)
	assert.Equal(t, []string{"2025-06-15", "2025-06-12", "2025-06-10"}, dates)
}

func TestEntriesForDate_ExactMatch(t *testing.T) {
	entries := []models.DiaryEntry{
		{ID: 3, Date: "2025-06-15"},
		{ID: 2, Date: "2025-06-10"},
		{ID: 1, Date: "2025-06-15"},
	}

	got := EntriesForDate(entries, "2025-06-15")
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)

	assert.Empty(t, EntriesForDate(entries, "2025-06-11"))
}

func TestView_DefaultsToToday(t *testing.T) {
	v := NewView(fixedClock(testNow))
	assert.Equal(t, "2025-06-15", v.SelectedDate())
}

func TestView_SelectPastAndToday(t *testing.T) {
	v := NewView(fixedClock(testNow))

	require.NoError(t, v.Select("2025-06-10"))
	assert.Equal(t, "2025-06-10", v.SelectedDate())

	require.NoError(t, v.Select("2025-06-15"))
	assert.Equal(t, "2025-06-15", v.SelectedDate())
}

func TestView_SelectFutureRejected(t *testing.T) {
	v := NewView(fixedClock(testNow))
	require.NoError(t, v.Select("2025-06-10"))

	err := v.Select("2025-06-16")
	assert.ErrorIs(t, err, common.ErrFutureDate)
	// selection unchanged
	assert.Equal(t, "2025-06-10", v.SelectedDate())
}

func TestView_SelectGarbageRejected(t *testing.T) {
	v := NewView(fixedClock(testNow))
	assert.Error(t, v.Select("15/06/2025"))
	assert.Equal(t, "2025-06-15", v.SelectedDate())
}

func TestNotice_ExpiresAfterWindow(t *testing.T) {
	now := testNow
	n := NewNotice(func() time.Time { return now })

	n.Set("cannot chronicle the future")

	msg, ok := n.Message()
	require.True(t, ok)
	assert.Equal(t, "cannot chronicle the future", msg)

	now = testNow.Add(NoticeTTL - time.Millisecond)
	_, ok = n.Message()
	assert.True(t, ok)

	now = testNow.Add(NoticeTTL)
	_, ok = n.Message()
	assert.False(t, ok)
}

func TestNotice_EmptyByDefault(t *testing.T) {
	n := NewNotice(fixedClock(testNow))
	_, ok := n.Message()
	assert.False(t, ok)
}
