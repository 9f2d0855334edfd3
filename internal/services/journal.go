package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/repos"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

type JournalService interface {
	Create(ctx context.Context, userID string, mood string, content string) (*types.JournalEntry, error)
	List(ctx context.Context, userID string) ([]*types.JournalEntry, error)
}

type journalService struct {
	db          *gorm.DB
	log         *logger.Logger
	journalRepo repos.JournalEntryRepo
}

func NewJournalService(db *gorm.DB, log *logger.Logger, journalRepo repos.JournalEntryRepo) JournalService {
	serviceLog := log.With("service", "JournalService")
	return &journalService{
		db:          db,
		log:         serviceLog,
		journalRepo: journalRepo,
	}
}

// Create surfaces storage failures to the caller; unlike the chat path, a
// journal save the student asked for must not fail silently.
func (js *journalService) Create(ctx context.Context, userID string, mood string, content string) (*types.JournalEntry, error) {
	entry := &types.JournalEntry{
		UserID:  userID,
		Mood:    mood,
		Content: content,
	}
	saved, err := js.journalRepo.Append(ctx, nil, entry)
	if err != nil {
		js.log.Error("Failed to persist journal entry", "user_id", userID, "error", err)
		return nil, fmt.Errorf("persist journal entry: %w", err)
	}
	return saved, nil
}

func (js *journalService) List(ctx context.Context, userID string) ([]*types.JournalEntry, error) {
	entries, err := js.journalRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}
	return entries, nil
}
