// Package server wires services and controllers into the echo router.
package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/controllers"
	"github.com/Dmitrii14/enterprise-development/internal/database"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// New builds the HTTP server: middleware, /health and the /api/v1 routes.
func New(db *gorm.DB, log *zap.Logger, cfg *config.Config) (*echo.Echo, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	controllers.NewHealthController(func(ctx context.Context) error {
		return database.Ping(ctx, sqlDB)
	}, log).Register(e)

	api := e.Group("/api/v1")
	controllers.NewBuyerController(services.NewBuyerService(db), log).Register(api)
	controllers.NewBuildingController(services.NewBuildingService(db), log).Register(api)
	controllers.NewDistrictController(services.NewDistrictService(db), log).Register(api)
	controllers.NewOrganizationController(services.NewOrganizationService(db), log).Register(api)
	controllers.NewAuctionController(services.NewAuctionService(db), log).Register(api)
	controllers.NewPrivatizedController(services.NewPrivatizedService(db), log).Register(api)
	controllers.NewRequestsController(services.NewRequestService(db), log).Register(api)

	return e, nil
}

// requestLogger writes one zap entry per request.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	access := log.Named("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				access.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			access.Info("request", fields...)
			return nil
		},
	})
}
