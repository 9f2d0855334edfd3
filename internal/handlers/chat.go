package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/services"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

// GatewayErrorReply is the outer fallback: whatever goes wrong past the
// request boundary, the dashboard still receives a readable chat bubble.
const GatewayErrorReply = "I'm having a little trouble connecting right now. Please try again."

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:         log.With("handler", "ChatHandler"),
		chatService: chatService,
	}
}

type chatResponse struct {
	Type     string `json:"type"`
	Response string `json:"response"`
}

// PostChat always answers 200 once the payload binds; failures are reported
// in-band with type "error" so the chat widget renders them as a bubble
// instead of breaking.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_chat_request", err)
		return
	}
	if req.Location == "" {
		req.Location = "Unknown"
	}

	reply, err := h.chatService.Send(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Chat request failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusOK, chatResponse{Type: "error", Response: GatewayErrorReply})
		return
	}

	c.JSON(http.StatusOK, chatResponse{Type: "chat", Response: reply})
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID := c.Param("user_id")
	messages, err := h.chatService.History(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Chat history load failed", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_chat_history_failed", err)
		return
	}
	RespondOK(c, messages)
}
