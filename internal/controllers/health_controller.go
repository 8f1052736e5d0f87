package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HealthController struct {
	ping func(ctx context.Context) error
	log  *zap.Logger
}

// NewHealthController probes the database with ping, normally database.Ping
// bound to the connection pool.
func NewHealthController(ping func(ctx context.Context) error, log *zap.Logger) *HealthController {
	return &HealthController{ping: ping, log: log.Named("health")}
}

func (ctr *HealthController) Register(e *echo.Echo) {
	e.GET("/health", ctr.HealthCheckHandler)
}

// HealthCheckHandler reports 200 when the database answers and 503 otherwise.
func (ctr *HealthController) HealthCheckHandler(c echo.Context) error {
	status := http.StatusOK
	health := echo.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	db := echo.Map{"status": "ok"}
	if err := ctr.ping(c.Request().Context()); err != nil {
		ctr.log.Warn("Database is not reachable", zap.Error(err))
		db = echo.Map{"status": "error", "message": err.Error()}
		health["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}
	health["checks"] = echo.Map{"database": db}

	return c.JSON(status, health)
}
