package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

type JournalEntryRepo interface {
	Append(ctx context.Context, tx *gorm.DB, entry *types.JournalEntry) (*types.JournalEntry, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.JournalEntry, error)
}

type journalEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJournalEntryRepo(db *gorm.DB, baseLog *logger.Logger) JournalEntryRepo {
	repoLog := baseLog.With("repo", "JournalEntryRepo")
	return &journalEntryRepo{db: db, log: repoLog}
}

func (jr *journalEntryRepo) Append(ctx context.Context, tx *gorm.DB, entry *types.JournalEntry) (*types.JournalEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = jr.db
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByUser returns entries most-recent-first, unlike chat history which
// replays oldest-first.
func (jr *journalEntryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string) ([]*types.JournalEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = jr.db
	}

	var results []*types.JournalEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
