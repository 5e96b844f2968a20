// README: Profile handler; preference reads, updates, and "forget me".
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caddie/internal/modules/profile"
)

const historyLimit = 20

type ProfileHandler struct {
	profiles *profile.Service
}

func NewProfileHandler(profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileResp struct {
	UserID            string                `json:"user_id"`
	PreferredStrength string                `json:"preferred_strength"`
	FavoriteBottles   []string              `json:"favorite_bottles"`
	RecentHistory     []profile.Interaction `json:"recent_history"`
}

type preferencesReq struct {
	PreferredStrength string `json:"preferred_strength"`
}

// Get handles GET /api/users/:id/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.Param("id")

	rec, err := h.profiles.Get(c.Request.Context(), userID)
	if errors.Is(err, profile.ErrNotFound) {
		writeError(c, http.StatusNotFound, "unknown user")
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	history, err := h.profiles.RecentHistory(c.Request.Context(), userID, historyLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if history == nil {
		history = []profile.Interaction{}
	}
	bottles := rec.FavoriteBottles
	if bottles == nil {
		bottles = []string{}
	}

	writeJSON(c, http.StatusOK, profileResp{
		UserID:            rec.UserID,
		PreferredStrength: rec.PreferredStrength,
		FavoriteBottles:   bottles,
		RecentHistory:     history,
	})
}

// SetPreferences handles PUT /api/users/:id/preferences.
func (h *ProfileHandler) SetPreferences(c *gin.Context) {
	userID := c.Param("id")

	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	strength := strings.ToLower(strings.TrimSpace(req.PreferredStrength))
	switch strength {
	case "mild", "medium", "full":
	default:
		writeError(c, http.StatusBadRequest, "preferred_strength must be mild, medium, or full")
		return
	}

	if err := h.profiles.SetPreferredStrength(c.Request.Context(), userID, strength); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id/profile.
func (h *ProfileHandler) Delete(c *gin.Context) {
	err := h.profiles.Forget(c.Request.Context(), c.Param("id"))
	if errors.Is(err, profile.ErrNotFound) {
		writeError(c, http.StatusNotFound, "unknown user")
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}
