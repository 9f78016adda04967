package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/clawdeck/clawdeck/pkg/chat"
	"github.com/clawdeck/clawdeck/pkg/gateway"
	"github.com/clawdeck/clawdeck/pkg/models"
	"github.com/clawdeck/clawdeck/pkg/services"
)

// maxMessageLength caps the user message body.
const maxMessageLength = 100_000

// sendChatHandler handles POST /api/v1/chat.
// Resolves the target session (switching and archiving if needed),
// fires the message at the gateway, and streams correlated agent
// events back as SSE until the run completes.
func (s *Server) sendChatHandler(c *echo.Context) error {
	// 1. Bind and validate request body
	var req models.SendChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.InstanceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "instance_id is required")
	}
	if req.AgentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_id is required")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds maximum length of 100,000 characters")
	}

	// 2. Extract user identity
	userID := extractUser(c)

	// 3. Look up the live gateway connection
	conn, ok := s.registry.Get(req.InstanceID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadGateway, "instance is not connected")
	}

	// 4. Resolve the persistent session (may archive + switch)
	sess, err := s.sessions.ResolveForSend(c.Request().Context(), conn, services.ResolveRequest{
		UserID:          userID,
		InstanceID:      req.InstanceID,
		AgentID:         req.AgentID,
		TargetSessionID: req.SessionID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	// 5. Merge explicit and workspace-discovered attachments
	attachments := s.assembler.Assemble(c.Request().Context(), userID, sess.ID, req.Attachments)

	// 6. Switch the response to SSE and stream
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	h.Set("X-Session-Id", sess.ID)
	c.Response().WriteHeader(http.StatusOK)

	emitter := newSSEWriter(c.Response())
	runID := uuid.New().String()
	streamer := chat.NewStreamer(conn, s.media, emitter, runID, sess.SessionKey)

	err = streamer.Run(c.Request().Context(), func(ctx context.Context) error {
		return conn.SendMessage(ctx, sess.SessionKey, req.Message, runID, gateway.SendOptions{
			Attachments: toSendAttachments(attachments),
		})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("Chat stream ended with error",
			"session_id", sess.ID, "run_id", runID, "error", err)
	}
	// Headers are already written; errors were reported in-stream.
	return nil
}

func toSendAttachments(attachments []chat.Attachment) []gateway.SendAttachment {
	if len(attachments) == 0 {
		return nil
	}
	out := make([]gateway.SendAttachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, gateway.SendAttachment{
			Name:     a.Name,
			MimeType: a.MimeType,
			Content:  a.Content,
		})
	}
	return out
}
