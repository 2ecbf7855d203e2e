package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/websage-ai/websage/config"
	"github.com/websage-ai/websage/internal/assistant"
	"github.com/websage-ai/websage/session"
	"github.com/websage-ai/websage/session/inmemory"
	redis_session "github.com/websage-ai/websage/session/redis"
)

// ChatHandler exposes the assistant over the REST API.
type ChatHandler struct {
	Store      session.Store
	Assistant  *assistant.Assistant
	SessionTTL time.Duration
	Logger     *log.Logger
}

func (h *ChatHandler) Register(g *echo.Group) {
	g.POST("/chat", h.handleChat)
	g.GET("/sessions/:id", h.handleGetSession)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string           `json:"session_id"`
	Reply     string           `json:"reply"`
	Sources   []string         `json:"sources"`
	Notices   []string         `json:"notices,omitempty"`
	Intent    assistant.Intent `json:"intent"`
}

func (h *ChatHandler) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	sess, err := h.Store.EnsureSession(req.SessionID, h.SessionTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to open session")
	}

	started := time.Now()
	turn, err := h.Assistant.Respond(c.Request().Context(), sess, req.Message)
	if err != nil {
		h.logf("turn failed for session %s: %v", sess.ID(), err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to answer")
	}
	h.logf("session %s answered in %s (intent=%s, sources=%d)",
		sess.ID(), time.Since(started).Round(time.Millisecond), turn.Intent, len(turn.Sources))

	return c.JSON(http.StatusOK, chatResponse{
		SessionID: sess.ID(),
		Reply:     turn.Reply,
		Sources:   turn.Sources,
		Notices:   turn.Notices,
		Intent:    turn.Intent,
	})
}

type sessionResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []session.Message `json:"messages"`
	Sources   []string          `json:"sources"`
}

func (h *ChatHandler) handleGetSession(c echo.Context) error {
	id := c.Param("id")
	sess, err := h.Store.GetSession(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load session")
	}
	if sess == nil {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return c.JSON(http.StatusOK, sessionResponse{
		SessionID: sess.ID(),
		Messages:  sess.Messages(),
		Sources:   sess.Sources(),
	})
}

func (h *ChatHandler) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
	}
}

func newStore(cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Store {
	case "redis":
		return redis_session.NewRedisSessionStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil
	default:
		return inmemory.NewInMemorySessionStore(), nil
	}
}
