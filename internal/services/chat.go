package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/repos"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

type ChatService interface {
	Send(ctx context.Context, req types.ChatRequest) (string, error)
	History(ctx context.Context, userID string) ([]*types.ChatMessage, error)
}

type chatService struct {
	db       *gorm.DB
	log      *logger.Logger
	chatRepo repos.ChatMessageRepo
	composer ComposerService
}

func NewChatService(db *gorm.DB, log *logger.Logger, chatRepo repos.ChatMessageRepo, composer ComposerService) ChatService {
	serviceLog := log.With("service", "ChatService")
	return &chatService{
		db:       db,
		log:      serviceLog,
		chatRepo: chatRepo,
		composer: composer,
	}
}

// Send persists the user turn, composes the reply, then persists the
// assistant turn. The user turn stays durable even when later steps fail.
// A failed assistant-turn write is logged but does not fail the request:
// the student still gets the reply, and history is the only casualty.
func (cs *chatService) Send(ctx context.Context, req types.ChatRequest) (string, error) {
	userTurn := &types.ChatMessage{
		UserID:  req.UserID,
		Role:    types.RoleUser,
		Content: req.UserMessage,
	}
	if _, err := cs.chatRepo.Append(ctx, nil, userTurn); err != nil {
		cs.log.Error("Failed to persist user turn", "user_id", req.UserID, "error", err)
		return "", fmt.Errorf("persist user turn: %w", err)
	}

	reply := cs.composer.Compose(ctx, req)

	assistantTurn := &types.ChatMessage{
		UserID:  req.UserID,
		Role:    types.RoleAssistant,
		Content: reply,
	}
	if _, err := cs.chatRepo.Append(ctx, nil, assistantTurn); err != nil {
		cs.log.Error("Failed to persist assistant turn, returning reply anyway", "user_id", req.UserID, "error", err)
	}

	return reply, nil
}

func (cs *chatService) History(ctx context.Context, userID string) ([]*types.ChatMessage, error) {
	messages, err := cs.chatRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	return messages, nil
}
