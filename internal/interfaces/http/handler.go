package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the liveness endpoints used by platform health probes. It
// shares no state with the message-handling path beyond read-only identity.
type Handler struct {
	botName   string
	startedAt time.Time
}

func NewHandler(botName string) *Handler {
	return &Handler{
		botName:   botName,
		startedAt: time.Now(),
	}
}

func SetupRoutes(r *gin.Engine, botName string) {
	h := NewHandler(botName)

	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size

	r.GET("/", h.Root)
	r.GET("/healthz", h.Health)
}

// Root returns a static acknowledgment for port-binding health checks.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Bot is running.")
}

// Health reports bot identity and uptime.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot":    h.botName,
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
