package types

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a private journal record. Append-only like ChatMessage,
// but replayed most-recent-first.
type JournalEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null;column:user_id" json:"user_id"`
	Mood      string    `gorm:"column:mood" json:"mood"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	Timestamp time.Time `gorm:"index;not null;column:timestamp" json:"timestamp"`
}

func (JournalEntry) TableName() string {
	return "journal_entry"
}
