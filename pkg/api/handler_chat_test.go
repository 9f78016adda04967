package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/pkg/gateway"
)

func TestSendChatHandler_Validation(t *testing.T) {
	// Only parameter validation is covered here (returns 400 before any
	// service is touched). Streaming happy-path is covered by the
	// chat package tests with a fake gateway connection.
	s := &Server{registry: gateway.NewRegistry()}

	tests := []struct {
		name    string
		body    string
		wantErr int
		errMsg  string
	}{
		{
			name:    "malformed json",
			body:    `{not json`,
			wantErr: http.StatusBadRequest,
		},
		{
			name:    "missing instance_id",
			body:    `{"agent_id":"ops","message":"hi"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "instance_id is required",
		},
		{
			name:    "missing agent_id",
			body:    `{"instance_id":"prod","message":"hi"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "agent_id is required",
		},
		{
			name:    "missing message",
			body:    `{"instance_id":"prod","agent_id":"ops"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "message is required",
		},
		{
			name:    "message too long",
			body:    `{"instance_id":"prod","agent_id":"ops","message":"` + strings.Repeat("x", maxMessageLength+1) + `"}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "maximum length",
		},
		{
			name:    "unknown instance",
			body:    `{"instance_id":"ghost","agent_id":"ops","message":"hi"}`,
			wantErr: http.StatusBadGateway,
			errMsg:  "not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.sendChatHandler(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, he.Code)
			if tt.errMsg != "" {
				assert.Contains(t, he.Message, tt.errMsg)
			}
		})
	}
}
