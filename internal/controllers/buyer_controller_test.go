package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

func TestBuyerController_List(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/buyers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	buyers := decode[[]models.Buyer](t, rec)
	assert.Len(t, buyers, 8)
}

func TestBuyerController_Get(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/buyers/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Корнеев", decode[models.Buyer](t, rec).LastName)

	rec = do(e, http.MethodGet, "/api/v1/buyers/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "not found")

	rec = do(e, http.MethodGet, "/api/v1/buyers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuyerController_CreateUpdateDelete(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodPost, "/api/v1/buyers", `{"last_name":"Иванов","first_name":"Иван"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Buyer](t, rec)
	assert.Equal(t, 9, created.BuyerID)

	rec = do(e, http.MethodPut, "/api/v1/buyers/9", `{"last_name":"Иванов","first_name":"Пётр"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Пётр", decode[models.Buyer](t, rec).FirstName)

	rec = do(e, http.MethodPost, "/api/v1/buyers", `{"first_name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/buyers", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/buyers/9", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodDelete, "/api/v1/buyers/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuyerController_Auctions(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/buyers/1/auctions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Auction](t, rec), 6)

	rec = do(e, http.MethodPost, "/api/v1/buyers/5/auctions", `{"auction_id":1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = do(e, http.MethodPost, "/api/v1/buyers/5/auctions", `{"auction_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(e, http.MethodPost, "/api/v1/buyers/5/auctions", `{"auction_id":404}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/buyers/5/auctions/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodDelete, "/api/v1/buyers/5/auctions/1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
