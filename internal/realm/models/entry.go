// Package models defines the record types held in the feature slots: diary
// entries, quests, todo items, and diet entries.
package models

import "time"

const (
	// DateLayout is the calendar-day key used to partition diary entries.
	DateLayout = "2006-01-02"

	// displayLayout matches the human-readable timestamps stored with every
	// entry, e.g. "1/2/2006, 3:04:05 PM".
	displayLayout = "1/2/2006, 3:04:05 PM"
)

// NewID derives an entry id from its creation time. Ids are unique in
// practice because entries are created one at a time from UI events.
func NewID(t time.Time) int64 {
	return t.UnixMilli()
}

// DateKey formats a time as a partition key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DisplayTime formats a time the way entry timestamps are shown and stored.
func DisplayTime(t time.Time) string {
	return t.Format(displayLayout)
}

// DiaryEntry is one diary note, partitioned by its Date key.
type DiaryEntry struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

func (e DiaryEntry) Key() int64 { return e.ID }

// TodoItem is one item on the plain todo list.
type TodoItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (e TodoItem) Key() int64 { return e.ID }

// Difficulty classifies how hard a quest is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestCategory classifies what a quest is about.
type QuestCategory string

const (
	CategoryCombat      QuestCategory = "combat"
	CategoryExploration QuestCategory = "exploration"
	CategoryWisdom      QuestCategory = "wisdom"
)

// Valid reports whether c is one of the known categories.
func (c QuestCategory) Valid() bool {
	switch c {
	case CategoryCombat, CategoryExploration, CategoryWisdom:
		return true
	}
	return false
}

// Quest is a todo item with difficulty and category attached.
type Quest struct {
	ID         int64         `json:"id"`
	Text       string        `json:"text"`
	Completed  bool          `json:"completed"`
	Difficulty Difficulty    `json:"difficulty"`
	Category   QuestCategory `json:"category"`
	Timestamp  string        `json:"timestamp"`
}

func (e Quest) Key() int64 { return e.ID }
