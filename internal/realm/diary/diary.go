// Package diary implements the date-partitioned view over diary entries.
// Entries carry a yyyy-MM-dd date key; the view derives the distinct dates
// present, filters by a selected day, and refuses to select days that have
// not happened yet.
package diary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

// NewEntry builds a diary entry stamped at now. Empty or whitespace-only
// content yields common.ErrEmptyInput and nothing is created.
func NewEntry(content string, now time.Time) (models.DiaryEntry, error) {
	if strings.TrimSpace(content) == "" {
		return models.DiaryEntry{}, common.ErrEmptyInput
	}
	return models.DiaryEntry{
		ID:        models.NewID(now),
		Content:   content,
		Timestamp: models.DisplayTime(now),
		Date:      models.DateKey(now),
	}, nil
}

// DistinctDates returns the dates present among entries, most recent first.
func DistinctDates(entries []models.DiaryEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	var dates []string
	for _, e := range entries {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	// yyyy-MM-dd sorts chronologically as a string
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// EntriesForDate returns the entries whose date key matches exactly,
// preserving order.
func EntriesForDate(entries []models.DiaryEntry, date string) []models.DiaryEntry {
	var out []models.DiaryEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// View tracks the selected date. When nothing has been selected it reads as
// "today".
type View struct {
	now      func() time.Time
	selected string
}

// NewView returns a view using the given clock, or time.Now when nil.
func NewView(now func() time.Time) *View {
	if now == nil {
		now = time.Now
	}
	return &View{now: now}
}

// SelectedDate returns the current selection, defaulting to today.
func (v *View) SelectedDate() string {
	if v.selected == "" {
		return models.DateKey(v.now())
	}
	return v.selected
}

// Select sets the selected date. Dates strictly after the current calendar
// day are rejected with common.ErrFutureDate and the selection is unchanged;
// callers surface the rejection as a transient warning.
func (v *View) Select(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if date > models.DateKey(v.now()) {
		return common.ErrFutureDate
	}
	v.selected = date
	return nil
}
