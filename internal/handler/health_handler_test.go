package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partylink/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name     string
		database handler.HealthCheck
		redis    handler.HealthCheck
		status   int
		body     string
	}{
		{"All healthy", ok, ok, http.StatusOK, `{"ok":true,"database":"ok","redis":"ok"}`},
		{"Redis down", ok, down, http.StatusServiceUnavailable, `{"ok":false,"database":"ok","redis":"error"}`},
		{"Database down", down, ok, http.StatusServiceUnavailable, `{"ok":false,"database":"error","redis":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler.NewHealthHandler(tt.database, tt.redis).RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
