// Package quests implements the quest log: creation, status filtering, and
// the completion-rate aggregate.
package quests

import (
	"math"
	"strings"
	"time"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

// FilterMode selects which quests a listing shows.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// Valid reports whether m is a known filter mode.
func (m FilterMode) Valid() bool {
	switch m {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// NewQuest builds a quest stamped at now. Blank text is rejected with
// common.ErrEmptyInput; unknown difficulty or category values fall back to
// medium/combat rather than failing.
func NewQuest(text string, difficulty models.Difficulty, category models.QuestCategory, now time.Time) (models.Quest, error) {
	if strings.TrimSpace(text) == "" {
		return models.Quest{}, common.ErrEmptyInput
	}
	if !difficulty.Valid() {
		difficulty = models.DifficultyMedium
	}
	if !category.Valid() {
		category = models.CategoryCombat
	}
	return models.Quest{
		ID:         models.NewID(now),
		Text:       text,
		Difficulty: difficulty,
		Category:   category,
		Timestamp:  models.DisplayTime(now),
	}, nil
}

// CompletionRate returns the percentage of completed quests, rounded to the
// nearest integer. An empty list is 0, not NaN.
func CompletionRate(list []models.Quest) int {
	if len(list) == 0 {
		return 0
	}
	completed := 0
	for _, q := range list {
		if q.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(list))))
}

// Filter returns the subset matching mode, preserving order. Unknown modes
// behave as FilterAll.
func Filter(list []models.Quest, mode FilterMode) []models.Quest {
	if mode == FilterAll || !mode.Valid() {
		return list
	}
	var out []models.Quest
	for _, q := range list {
		switch mode {
		case FilterActive:
			if !q.Completed {
				out = append(out, q)
			}
		case FilterCompleted:
			if q.Completed {
				out = append(out, q)
			}
		}
	}
	return out
}

// Toggle flips a quest's completed flag. Meant for Store.Update.
func Toggle(q *models.Quest) {
	q.Completed = !q.Completed
}
