package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a conversation. Rows are append-only; replay
// order is timestamp ascending.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null;column:user_id" json:"user_id"`
	Role      string    `gorm:"not null;column:role" json:"role"`
	Content   string    `gorm:"type:text;not null;column:content" json:"content"`
	Timestamp time.Time `gorm:"index;not null;column:timestamp" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
