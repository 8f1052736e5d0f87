package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/database"
	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/report"
	"github.com/Dmitrii14/enterprise-development/internal/seed"
)

func startServer(t *testing.T) *resty.Client {
	t.Helper()

	cfg := &config.Config{
		Database:         config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
		CORSAllowOrigins: []string{"http://localhost:3000"},
	}
	log := zap.NewNop()

	db, err := database.Connect(cfg, log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	_, err = seed.Apply(context.Background(), db)
	require.NoError(t, err)

	e, err := New(db, log, cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return resty.New().
		SetBaseURL(srv.URL).
		SetHeader("Accept", "application/json")
}

func TestServer_Health(t *testing.T) {
	client := startServer(t)

	var body map[string]any
	resp, err := client.R().SetResult(&body).Get("/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "healthy", body["status"])

	_, err = uuid.Parse(resp.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err, "request id should be a uuid")
}

func TestServer_CORS(t *testing.T) {
	client := startServer(t)

	resp, err := client.R().
		SetHeader(echo.HeaderOrigin, "http://localhost:3000").
		SetHeader(echo.HeaderAccessControlRequestMethod, http.MethodPost).
		Options("/api/v1/buyers")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "http://localhost:3000", resp.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header().Get(echo.HeaderAccessControlAllowCredentials))

	resp, err = client.R().
		SetHeader(echo.HeaderOrigin, "http://localhost:3000").
		Get("/api/v1/buyers")
	require.NoError(t, err)
	assert.Equal(t, "true", resp.Header().Get(echo.HeaderAccessControlAllowCredentials))

	resp, err = client.R().
		SetHeader(echo.HeaderOrigin, "http://evil.test").
		Get("/api/v1/buyers")
	require.NoError(t, err)
	assert.Empty(t, resp.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_SaleChangesReports(t *testing.T) {
	client := startServer(t)

	var sale models.Privatized
	resp, err := client.R().
		SetBody(models.PrivatizedRequest{RegistrationNumber: 10, BuyerID: 7, AuctionID: 9, StartPrice: 1000000, EndPrice: 25000000}).
		SetResult(&sale).
		Post("/api/v1/privatized")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	assert.Equal(t, 10, sale.RegistrationNumber)

	var top []report.BuyerExpensesRow
	resp, err = client.R().SetResult(&top).Get("/api/v1/requests/top-buyers-by-expenses")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, top, 5)
	assert.Equal(t, 7, top[0].BuyerID)

	var income []report.AuctionIncomeRow
	resp, err = client.R().SetResult(&income).Get("/api/v1/requests/auctions-with-highest-income")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, income, 7)
	assert.Equal(t, report.AuctionIncomeRow{AuctionID: 9, Income: 24000000}, income[0])
}

func TestServer_NotFoundAndBadRequest(t *testing.T) {
	client := startServer(t)

	var failure map[string]string
	resp, err := client.R().SetError(&failure).Get("/api/v1/buildings/404")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.NotEmpty(t, failure["error"])

	resp, err = client.R().
		SetBody(map[string]int{"auction_id": 1}).
		Post("/api/v1/buyers/1/auctions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}
