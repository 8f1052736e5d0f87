package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheckHandler(t *testing.T) {
	cases := []struct {
		name   string
		ping   error
		status int
		health string
	}{
		{"healthy", nil, http.StatusOK, "healthy"},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			NewHealthController(func(context.Context) error { return tc.ping }, zap.NewNop()).Register(e)

			rec := do(e, http.MethodGet, "/health", "")

			assert.Equal(t, tc.status, rec.Code)
			body := decode[map[string]any](t, rec)
			assert.Equal(t, tc.health, body["status"])
			assert.Contains(t, body, "checks")
		})
	}
}
