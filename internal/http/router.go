// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"caddie/internal/http/handlers"
	"caddie/internal/http/middleware"
	"caddie/internal/modules/dialogue"
	"caddie/internal/modules/profile"
)

func NewRouter(
	engine *dialogue.Service,
	sessions *dialogue.SessionStore,
	profiles *profile.Service,
	log *zap.Logger,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	chatHandler := handlers.NewChatHandler(engine, sessions)
	r.POST("/api/chat", chatHandler.Chat)

	profileHandler := handlers.NewProfileHandler(profiles)
	r.GET("/api/users/:id/profile", profileHandler.Get)
	r.PUT("/api/users/:id/preferences", profileHandler.SetPreferences)
	r.DELETE("/api/users/:id/profile", profileHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
