package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// AuctionService manages auctions, the buildings offered at them and the
// buyers who attended.
type AuctionService interface {
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	GetAuction(ctx context.Context, id int) (*models.Auction, error)
	CreateAuction(ctx context.Context, req models.AuctionRequest) (*models.Auction, error)
	UpdateAuction(ctx context.Context, id int, req models.AuctionRequest) (*models.Auction, error)
	// DeleteAuction also removes its offers, attendance and sales.
	DeleteAuction(ctx context.Context, id int) error

	ListAuctionBuildings(ctx context.Context, id int) ([]models.Building, error)
	AddAuctionBuilding(ctx context.Context, auctionID, buildingID int) error
	RemoveAuctionBuilding(ctx context.Context, auctionID, buildingID int) error

	ListAuctionBuyers(ctx context.Context, id int) ([]models.Buyer, error)
	AddAuctionBuyer(ctx context.Context, auctionID, buyerID int) error
	RemoveAuctionBuyer(ctx context.Context, auctionID, buyerID int) error
}

type auctionService struct {
	db *gorm.DB
}

func NewAuctionService(db *gorm.DB) AuctionService {
	return &auctionService{db: db}
}

func (s *auctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions := []models.Auction{}
	if err := s.db.WithContext(ctx).Order("auction_id").Find(&auctions).Error; err != nil {
		return nil, err
	}
	return auctions, nil
}

func (s *auctionService) GetAuction(ctx context.Context, id int) (*models.Auction, error) {
	var a models.Auction
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func checkAuction(tx *gorm.DB, req models.AuctionRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return mustExist[models.Organization](tx, "organization", "organization_id = ?", req.OrganizationID)
}

func (s *auctionService) CreateAuction(ctx context.Context, req models.AuctionRequest) (*models.Auction, error) {
	a := models.Auction{Date: req.Date, OrganizationID: req.OrganizationID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAuction(tx, req); err != nil {
			return err
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *auctionService) UpdateAuction(ctx context.Context, id int, req models.AuctionRequest) (*models.Auction, error) {
	var a models.Auction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return notFound(err)
		}
		if err := checkAuction(tx, req); err != nil {
			return err
		}
		a.Date = req.Date
		a.OrganizationID = req.OrganizationID
		return tx.Save(&a).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *auctionService) DeleteAuction(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Auction](tx, "auction_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		for _, m := range []any{&models.Privatized{}, &models.BuildingAuction{}, &models.BuyerAuction{}} {
			if err := tx.Where("auction_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Auction{}, id).Error
	})
}

func (s *auctionService) ListAuctionBuildings(ctx context.Context, id int) ([]models.Building, error) {
	buildings := []models.Building{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Auction](tx, "auction_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		return tx.Joins("JOIN building_auctions ON building_auctions.building_id = buildings.registration_number").
			Where("building_auctions.auction_id = ?", id).
			Order("buildings.registration_number").
			Find(&buildings).Error
	})
	if err != nil {
		return nil, err
	}
	return buildings, nil
}

func (s *auctionService) AddAuctionBuilding(ctx context.Context, auctionID, buildingID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return addOffer(tx, buildingID, auctionID)
	})
}

func (s *auctionService) RemoveAuctionBuilding(ctx context.Context, auctionID, buildingID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return removeOffer(tx, buildingID, auctionID)
	})
}

func (s *auctionService) ListAuctionBuyers(ctx context.Context, id int) ([]models.Buyer, error) {
	buyers := []models.Buyer{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Auction](tx, "auction_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		return tx.Joins("JOIN buyer_auctions ON buyer_auctions.buyer_id = buyers.buyer_id").
			Where("buyer_auctions.auction_id = ?", id).
			Order("buyers.buyer_id").
			Find(&buyers).Error
	})
	if err != nil {
		return nil, err
	}
	return buyers, nil
}

func (s *auctionService) AddAuctionBuyer(ctx context.Context, auctionID, buyerID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return addAttendance(tx, buyerID, auctionID)
	})
}

func (s *auctionService) RemoveAuctionBuyer(ctx context.Context, auctionID, buyerID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return removeAttendance(tx, buyerID, auctionID)
	})
}
