package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

func newBuildingRequest() models.BuildingRequest {
	return models.BuildingRequest{
		Address:    "Ул. Гагарина д. 5",
		DistrictID: 3,
		Area:       120.5,
		FloorCount: 4,
		BuildDate:  time.Date(1999, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateBuilding(t *testing.T) {
	ctx := context.Background()
	svc := NewBuildingService(seededDB(t))

	b, err := svc.CreateBuilding(ctx, newBuildingRequest())
	require.NoError(t, err)
	assert.Equal(t, 11, b.RegistrationNumber)

	req := newBuildingRequest()
	req.RegistrationNumber = 50
	b, err = svc.CreateBuilding(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 50, b.RegistrationNumber)

	_, err = svc.CreateBuilding(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateBuilding_UnknownDistrict(t *testing.T) {
	svc := NewBuildingService(seededDB(t))
	req := newBuildingRequest()
	req.DistrictID = 42

	_, err := svc.CreateBuilding(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateBuilding_Validation(t *testing.T) {
	svc := NewBuildingService(seededDB(t))
	req := newBuildingRequest()
	req.Address = "  "

	_, err := svc.CreateBuilding(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateBuilding(t *testing.T) {
	ctx := context.Background()
	svc := NewBuildingService(seededDB(t))

	b, err := svc.UpdateBuilding(ctx, 6, newBuildingRequest())
	require.NoError(t, err)
	assert.Equal(t, 6, b.RegistrationNumber)
	assert.Equal(t, 3, b.DistrictID)

	req := newBuildingRequest()
	req.RegistrationNumber = 7
	_, err = svc.UpdateBuilding(ctx, 6, req)
	assert.ErrorIs(t, err, ErrKeyMismatch)

	_, err = svc.UpdateBuilding(ctx, 99, newBuildingRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBuilding_RemovesOffersAndSale(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuildingService(db)

	require.NoError(t, svc.DeleteBuilding(ctx, 9))

	assert.Zero(t, count[models.BuildingAuction](t, db, "building_id = ?", 9))
	assert.Zero(t, count[models.Privatized](t, db, "registration_number = ?", 9))
	assert.ErrorIs(t, svc.DeleteBuilding(ctx, 9), ErrNotFound)
}

func TestBuildingAuctions(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuildingService(db)

	auctions, err := svc.ListBuildingAuctions(ctx, 9)
	require.NoError(t, err)
	require.Len(t, auctions, 2)
	assert.Equal(t, 1, auctions[0].AuctionID)
	assert.Equal(t, 7, auctions[1].AuctionID)

	require.NoError(t, svc.AddBuildingAuction(ctx, 6, 9))
	assert.ErrorIs(t, svc.AddBuildingAuction(ctx, 6, 9), ErrDuplicateLink)
	assert.ErrorIs(t, svc.AddBuildingAuction(ctx, 60, 9), ErrInvalidReference)

	require.NoError(t, svc.RemoveBuildingAuction(ctx, 6, 9))
	assert.ErrorIs(t, svc.RemoveBuildingAuction(ctx, 6, 9), ErrInvalidReference)
}

func TestRemoveBuildingAuction_SoldOffer(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := NewBuildingService(db)

	// Building 3 was sold at auction 3.
	assert.ErrorIs(t, svc.RemoveBuildingAuction(ctx, 3, 3), ErrInUse)
	assert.EqualValues(t, 1, count[models.BuildingAuction](t, db, "building_id = ? AND auction_id = ?", 3, 3))
}
