package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/services"
)

type JournalHandler struct {
	log            *logger.Logger
	journalService services.JournalService
}

func NewJournalHandler(log *logger.Logger, journalService services.JournalService) *JournalHandler {
	return &JournalHandler{
		log:            log.With("handler", "JournalHandler"),
		journalService: journalService,
	}
}

type journalCreateRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Mood    string `json:"mood"`
	Content string `json:"content" binding:"required"`
}

func (h *JournalHandler) PostJournal(c *gin.Context) {
	var req journalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_journal_request", err)
		return
	}

	entry, err := h.journalService.Create(c.Request.Context(), req.UserID, req.Mood, req.Content)
	if err != nil {
		h.log.Error("Journal save failed", "user_id", req.UserID, "error", err)
		// The client gets a generic detail; the typed cause stays in the logs.
		RespondError(c, http.StatusInternalServerError, "journal_save_failed", errors.New("Could not save to database."))
		return
	}

	RespondOK(c, gin.H{
		"status":  "success",
		"message": "Journal saved!",
		"id":      entry.ID,
	})
}

func (h *JournalHandler) GetEntries(c *gin.Context) {
	userID := c.Param("user_id")
	entries, err := h.journalService.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Journal list failed", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_journal_failed", err)
		return
	}
	RespondOK(c, entries)
}
