package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/seed"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	_, err = seed.Apply(context.Background(), db)
	require.NoError(t, err)

	log := zap.NewNop()
	e := echo.New()
	api := e.Group("/api/v1")
	NewBuyerController(services.NewBuyerService(db), log).Register(api)
	NewBuildingController(services.NewBuildingService(db), log).Register(api)
	NewDistrictController(services.NewDistrictService(db), log).Register(api)
	NewOrganizationController(services.NewOrganizationService(db), log).Register(api)
	NewAuctionController(services.NewAuctionService(db), log).Register(api)
	NewPrivatizedController(services.NewPrivatizedService(db), log).Register(api)
	NewRequestsController(services.NewRequestService(db), log).Register(api)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
