package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clawdeck/clawdeck/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error maps to 400",
			err:  services.NewValidationError("agent_id", "agent_id is required"),
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped not found maps to 404",
			err:  fmt.Errorf("session x: %w", services.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "already exists maps to 409",
			err:  services.ErrAlreadyExists,
			want: http.StatusConflict,
		},
		{
			name: "unknown error maps to 500",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.want, he.Code)
		})
	}
}
