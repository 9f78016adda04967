package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/clawdeck/clawdeck/pkg/models"
)

// SessionListResponse is the response for GET /api/v1/chat/sessions.
type SessionListResponse struct {
	Sessions []models.SessionSummary `json:"sessions"`
}

// SessionMessagesResponse is the response for
// GET /api/v1/chat/sessions/:id/messages.
type SessionMessagesResponse struct {
	SessionID string                  `json:"session_id"`
	Messages  []models.SessionMessage `json:"messages"`
}

// listChatSessionsHandler handles GET /api/v1/chat/sessions.
// Lists the requesting user's sessions for one instance/agent pair.
func (s *Server) listChatSessionsHandler(c *echo.Context) error {
	instanceID := c.QueryParam("instance_id")
	if instanceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "instance_id is required")
	}
	agentID := c.QueryParam("agent_id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}

	userID := extractUser(c)
	sessions, err := s.sessions.ListSessions(c.Request().Context(), userID, instanceID, agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SessionListResponse{Sessions: sessions})
}

// getSessionMessagesHandler handles GET /api/v1/chat/sessions/:id/messages.
// Returns the archived snapshot rows of one owned session in playback
// order.
func (s *Server) getSessionMessagesHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	userID := extractUser(c)
	messages, err := s.sessions.GetSessionMessages(c.Request().Context(), userID, sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SessionMessagesResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}
