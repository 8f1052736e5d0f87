package controllers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Dmitrii14/enterprise-development/internal/export"
	"github.com/Dmitrii14/enterprise-development/internal/report"
)

func TestRequestsController_JSON(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/requests/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]report.BuyerRow](t, rec), 8)

	rec = do(e, http.MethodGet, "/api/v1/requests/auctions-not-all-lots-sold", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]report.AuctionRow](t, rec), 2)

	rec = do(e, http.MethodGet, "/api/v1/requests/districts/1/buyers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	inDistrict := decode[[]report.DistrictBuyerRow](t, rec)
	require.Len(t, inDistrict, 3)
	assert.Equal(t, "Аскерова", inDistrict[0].LastName)

	rec = do(e, http.MethodGet, "/api/v1/requests/participants/2022-03-21/addresses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]report.BuyerAddressRow](t, rec), 5)

	rec = do(e, http.MethodGet, "/api/v1/requests/top-buyers-by-expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	top := decode[[]report.BuyerExpensesRow](t, rec)
	require.Len(t, top, 4)
	assert.Equal(t, report.BuyerExpensesRow{BuyerID: 8, Expenses: 19028350.17}, top[0])

	rec = do(e, http.MethodGet, "/api/v1/requests/auctions-with-highest-income", "")
	require.Equal(t, http.StatusOK, rec.Code)
	income := decode[[]report.AuctionIncomeRow](t, rec)
	require.Len(t, income, 6)
	assert.Equal(t, 3, income[0].AuctionID)
}

func TestRequestsController_EmptyResultIsArray(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/requests/districts/3/buyers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRequestsController_BadParams(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/requests/participants/21.03.2022/addresses", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/requests/districts/zero/buyers", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/requests/customers?format=csv", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestsController_XLSX(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/requests/top-buyers-by-expenses?format=xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "top-buyers-by-expenses.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Top buyers")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"8", "19028350.17"}, rows[1])
}
