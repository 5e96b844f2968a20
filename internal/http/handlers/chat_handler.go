// README: Chat handler; one POST per conversational turn.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"caddie/internal/modules/dialogue"
)

const turnTimeout = 30 * time.Second

type ChatHandler struct {
	engine   *dialogue.Service
	sessions *dialogue.SessionStore
}

func NewChatHandler(engine *dialogue.Service, sessions *dialogue.SessionStore) *ChatHandler {
	return &ChatHandler{engine: engine, sessions: sessions}
}

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResp struct {
	UserID   string            `json:"user_id"`
	Response dialogue.Response `json:"response"`
}

// Chat handles POST /api/chat. A missing user_id gets an anonymous one;
// the client keeps sending it back to stay in the same session.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	sess, release := h.sessions.Checkout(req.UserID)
	defer release()

	resp := h.engine.ProcessTurn(ctx, req.Message, sess)
	writeJSON(c, http.StatusOK, chatResp{UserID: req.UserID, Response: resp})
}
