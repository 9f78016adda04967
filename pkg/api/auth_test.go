package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded user wins",
			headers: map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com"},
			want:    "alice",
		},
		{
			name:    "falls back to forwarded email",
			headers: map[string]string{"X-Forwarded-Email": "bob@example.com"},
			want:    "bob@example.com",
		},
		{
			name:    "falls back to remote user",
			headers: map[string]string{"X-Remote-User": "carol"},
			want:    "carol",
		},
		{
			name: "default when unauthenticated",
			want: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.want, extractUser(c))
		})
	}
}
