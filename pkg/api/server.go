// Package api exposes the HTTP surface: the streaming chat endpoint,
// session browsing, and health.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/clawdeck/clawdeck/pkg/chat"
	"github.com/clawdeck/clawdeck/pkg/database"
	"github.com/clawdeck/clawdeck/pkg/gateway"
	"github.com/clawdeck/clawdeck/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	dbClient  *database.Client
	registry  *gateway.Registry
	sessions  *services.ChatSessionService
	assembler *chat.AttachmentAssembler
	media     *chat.MediaResolver

	httpServer *http.Server
}

// NewServer creates the API server. assembler may be built over a nil
// file-access client when no agent workspace is provisioned.
func NewServer(dbClient *database.Client, registry *gateway.Registry, sessions *services.ChatSessionService, assembler *chat.AttachmentAssembler) *Server {
	return &Server{
		dbClient:  dbClient,
		registry:  registry,
		sessions:  sessions,
		assembler: assembler,
		media:     chat.NewMediaResolver(),
	}
}

// Handler builds the routed echo handler.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.Use(securityHeaders())

	g := e.Group("/api/v1")
	g.GET("/health", s.healthHandler)
	g.POST("/chat", s.sendChatHandler)
	g.GET("/chat/sessions", s.listChatSessionsHandler)
	g.GET("/chat/sessions/:id/messages", s.getSessionMessagesHandler)

	return e
}

// Start runs the HTTP server on addr, blocking until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// No WriteTimeout: chat responses are long-lived SSE streams.
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
