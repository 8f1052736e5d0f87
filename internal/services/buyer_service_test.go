package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

func TestListBuyers_Empty(t *testing.T) {
	svc := NewBuyerService(setupTestDB(t))

	buyers, err := svc.ListBuyers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, buyers)
	assert.Empty(t, buyers)
}

func TestListBuyers_WithData(t *testing.T) {
	svc := NewBuyerService(seededDB(t))

	buyers, err := svc.ListBuyers(context.Background())
	require.NoError(t, err)
	require.Len(t, buyers, 8)
	assert.Equal(t, 1, buyers[0].BuyerID)
	assert.Equal(t, "Аскерова", buyers[7].LastName)
}

func TestGetBuyer_NotFound(t *testing.T) {
	svc := NewBuyerService(seededDB(t))

	_, err := svc.GetBuyer(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUpdateBuyer(t *testing.T) {
	ctx := context.Background()
	svc := NewBuyerService(seededDB(t))

	created, err := svc.CreateBuyer(ctx, models.BuyerRequest{LastName: "Иванов", FirstName: "Иван", Address: "г. Самара"})
	require.NoError(t, err)
	assert.Equal(t, 9, created.BuyerID)

	updated, err := svc.UpdateBuyer(ctx, created.BuyerID, models.BuyerRequest{LastName: "Иванов", FirstName: "Пётр"})
	require.NoError(t, err)
	assert.Equal(t, "Пётр", updated.FirstName)
	assert.Empty(t, updated.Address)

	got, err := svc.GetBuyer(ctx, created.BuyerID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestCreateBuyer_Validation(t *testing.T) {
	svc := NewBuyerService(setupTestDB(t))

	_, err := svc.CreateBuyer(context.Background(), models.BuyerRequest{FirstName: "Иван"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBuyer_NotFound(t *testing.T) {
	svc := NewBuyerService(setupTestDB(t))

	_, err := svc.UpdateBuyer(context.Background(), 5, models.BuyerRequest{LastName: "a", FirstName: "b"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBuyer_RemovesLinksAndSales(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuyerService(db)

	require.NoError(t, svc.DeleteBuyer(ctx, 8))

	assert.Zero(t, count[models.Buyer](t, db, "buyer_id = ?", 8))
	assert.Zero(t, count[models.BuyerAuction](t, db, "buyer_id = ?", 8))
	assert.Zero(t, count[models.Privatized](t, db, "buyer_id = ?", 8))
	assert.EqualValues(t, 4, count[models.Privatized](t, db, "1 = 1"))

	assert.ErrorIs(t, svc.DeleteBuyer(ctx, 8), ErrNotFound)
}

func TestBuyerAuctions(t *testing.T) {
	ctx := context.Background()
	svc := NewBuyerService(seededDB(t))

	auctions, err := svc.ListBuyerAuctions(ctx, 4)
	require.NoError(t, err)
	ids := make([]int, 0, len(auctions))
	for _, a := range auctions {
		ids = append(ids, a.AuctionID)
	}
	assert.Equal(t, []int{2, 5, 7, 8, 10}, ids)

	_, err = svc.ListBuyerAuctions(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddBuyerAuction(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuyerService(db)

	require.NoError(t, svc.AddBuyerAuction(ctx, 5, 1))
	assert.EqualValues(t, 1, count[models.BuyerAuction](t, db, "buyer_id = ? AND auction_id = ?", 5, 1))

	assert.ErrorIs(t, svc.AddBuyerAuction(ctx, 5, 1), ErrDuplicateLink)
	assert.ErrorIs(t, svc.AddBuyerAuction(ctx, 99, 1), ErrInvalidReference)
	assert.ErrorIs(t, svc.AddBuyerAuction(ctx, 5, 99), ErrInvalidReference)
}

func TestRemoveBuyerAuction(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuyerService(db)

	require.NoError(t, svc.RemoveBuyerAuction(ctx, 1, 1))
	assert.Zero(t, count[models.BuyerAuction](t, db, "buyer_id = ? AND auction_id = ?", 1, 1))

	assert.ErrorIs(t, svc.RemoveBuyerAuction(ctx, 1, 1), ErrInvalidReference)
}
