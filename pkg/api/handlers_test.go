package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

func TestWriteErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"conflict", services.ErrConflict, http.StatusConflict},
		{"validation", services.NewValidationError("status", "illegal transition"), http.StatusUnprocessableEntity},
		{"bad page token", fmt.Errorf("list libraries: %w", cursor.ErrInvalidCursor), http.StatusUnprocessableEntity},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestPageSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"default", "", defaultPageSize},
		{"explicit", "limit=25", 25},
		{"zero rejected", "limit=0", defaultPageSize},
		{"negative rejected", "limit=-5", defaultPageSize},
		{"over cap rejected", "limit=5000", defaultPageSize},
		{"garbage rejected", "limit=abc", defaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/libraries?"+tt.query, nil)
			assert.Equal(t, tt.want, pageSize(c))
		})
	}
}
