package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// PrivatizedService manages sale records. A sale is keyed by the sold
// building's registration number.
type PrivatizedService interface {
	ListPrivatized(ctx context.Context) ([]models.Privatized, error)
	GetPrivatized(ctx context.Context, registrationNumber int) (*models.Privatized, error)
	CreatePrivatized(ctx context.Context, req models.PrivatizedRequest) (*models.Privatized, error)
	UpdatePrivatized(ctx context.Context, registrationNumber int, req models.PrivatizedRequest) (*models.Privatized, error)
	DeletePrivatized(ctx context.Context, registrationNumber int) error
}

type privatizedService struct {
	db *gorm.DB
}

func NewPrivatizedService(db *gorm.DB) PrivatizedService {
	return &privatizedService{db: db}
}

func (s *privatizedService) ListPrivatized(ctx context.Context) ([]models.Privatized, error) {
	sales := []models.Privatized{}
	if err := s.db.WithContext(ctx).Order("registration_number").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *privatizedService) GetPrivatized(ctx context.Context, registrationNumber int) (*models.Privatized, error) {
	var p models.Privatized
	if err := s.db.WithContext(ctx).First(&p, registrationNumber).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// checkSale requires the buyer, the auction and the building to exist and
// the building to have been offered at that auction.
func checkSale(tx *gorm.DB, req models.PrivatizedRequest) error {
	if req.StartPrice < 0 || req.EndPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	if err := mustExist[models.Buyer](tx, "buyer", "buyer_id = ?", req.BuyerID); err != nil {
		return err
	}
	if err := mustExist[models.Auction](tx, "auction", "auction_id = ?", req.AuctionID); err != nil {
		return err
	}
	if err := mustExist[models.Building](tx, "building", "registration_number = ?", req.RegistrationNumber); err != nil {
		return err
	}

	offered, err := exists[models.BuildingAuction](tx, "building_id = ? AND auction_id = ?", req.RegistrationNumber, req.AuctionID)
	if err != nil {
		return err
	}
	if !offered {
		return fmt.Errorf("%w: building %d was not offered at auction %d", ErrInvalidReference, req.RegistrationNumber, req.AuctionID)
	}
	return nil
}

func applySale(p *models.Privatized, req models.PrivatizedRequest) {
	p.RegistrationNumber = req.RegistrationNumber
	p.BuyerID = req.BuyerID
	p.AuctionID = req.AuctionID
	p.SaleDate = req.SaleDate
	p.StartPrice = req.StartPrice
	p.EndPrice = req.EndPrice
}

func (s *privatizedService) CreatePrivatized(ctx context.Context, req models.PrivatizedRequest) (*models.Privatized, error) {
	var p models.Privatized
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSale(tx, req); err != nil {
			return err
		}
		sold, err := exists[models.Privatized](tx, "registration_number = ?", req.RegistrationNumber)
		if err != nil {
			return err
		}
		if sold {
			return fmt.Errorf("%w: building %d is already sold", ErrAlreadyExists, req.RegistrationNumber)
		}
		applySale(&p, req)
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePrivatized rewrites a sale. The body's registration number must equal
// registrationNumber; the key itself cannot change.
func (s *privatizedService) UpdatePrivatized(ctx context.Context, registrationNumber int, req models.PrivatizedRequest) (*models.Privatized, error) {
	if req.RegistrationNumber != registrationNumber {
		return nil, fmt.Errorf("%w: body registration_number %d, path %d", ErrKeyMismatch, req.RegistrationNumber, registrationNumber)
	}
	var p models.Privatized
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, registrationNumber).Error; err != nil {
			return notFound(err)
		}
		if err := checkSale(tx, req); err != nil {
			return err
		}
		applySale(&p, req)
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *privatizedService) DeletePrivatized(ctx context.Context, registrationNumber int) error {
	res := s.db.WithContext(ctx).Delete(&models.Privatized{}, registrationNumber)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
