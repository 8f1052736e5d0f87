package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// BuyerService manages buyers and the auctions they attend.
type BuyerService interface {
	ListBuyers(ctx context.Context) ([]models.Buyer, error)
	GetBuyer(ctx context.Context, id int) (*models.Buyer, error)
	CreateBuyer(ctx context.Context, req models.BuyerRequest) (*models.Buyer, error)
	UpdateBuyer(ctx context.Context, id int, req models.BuyerRequest) (*models.Buyer, error)
	// DeleteBuyer also removes the buyer's attendance and sale records.
	DeleteBuyer(ctx context.Context, id int) error

	ListBuyerAuctions(ctx context.Context, id int) ([]models.Auction, error)
	AddBuyerAuction(ctx context.Context, buyerID, auctionID int) error
	RemoveBuyerAuction(ctx context.Context, buyerID, auctionID int) error
}

type buyerService struct {
	db *gorm.DB
}

func NewBuyerService(db *gorm.DB) BuyerService {
	return &buyerService{db: db}
}

func (s *buyerService) ListBuyers(ctx context.Context) ([]models.Buyer, error) {
	buyers := []models.Buyer{}
	if err := s.db.WithContext(ctx).Order("buyer_id").Find(&buyers).Error; err != nil {
		return nil, err
	}
	return buyers, nil
}

func (s *buyerService) GetBuyer(ctx context.Context, id int) (*models.Buyer, error) {
	var b models.Buyer
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func validateBuyer(req models.BuyerRequest) error {
	if strings.TrimSpace(req.LastName) == "" || strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: last_name and first_name are required", ErrValidation)
	}
	return nil
}

func applyBuyer(b *models.Buyer, req models.BuyerRequest) {
	b.LastName = req.LastName
	b.FirstName = req.FirstName
	b.MiddleName = req.MiddleName
	b.PassportSeries = req.PassportSeries
	b.PassportNumber = req.PassportNumber
	b.Address = req.Address
}

func (s *buyerService) CreateBuyer(ctx context.Context, req models.BuyerRequest) (*models.Buyer, error) {
	if err := validateBuyer(req); err != nil {
		return nil, err
	}
	var b models.Buyer
	applyBuyer(&b, req)
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *buyerService) UpdateBuyer(ctx context.Context, id int, req models.BuyerRequest) (*models.Buyer, error) {
	if err := validateBuyer(req); err != nil {
		return nil, err
	}
	var b models.Buyer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return notFound(err)
		}
		applyBuyer(&b, req)
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *buyerService) DeleteBuyer(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Buyer](tx, "buyer_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		if err := tx.Where("buyer_id = ?", id).Delete(&models.Privatized{}).Error; err != nil {
			return err
		}
		if err := tx.Where("buyer_id = ?", id).Delete(&models.BuyerAuction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Buyer{}, id).Error
	})
}

func (s *buyerService) ListBuyerAuctions(ctx context.Context, id int) ([]models.Auction, error) {
	auctions := []models.Auction{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Buyer](tx, "buyer_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		return tx.Joins("JOIN buyer_auctions ON buyer_auctions.auction_id = auctions.auction_id").
			Where("buyer_auctions.buyer_id = ?", id).
			Order("auctions.auction_id").
			Find(&auctions).Error
	})
	if err != nil {
		return nil, err
	}
	return auctions, nil
}

func (s *buyerService) AddBuyerAuction(ctx context.Context, buyerID, auctionID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return addAttendance(tx, buyerID, auctionID)
	})
}

func (s *buyerService) RemoveBuyerAuction(ctx context.Context, buyerID, auctionID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return removeAttendance(tx, buyerID, auctionID)
	})
}

// addAttendance links a buyer to an auction. Both must exist and the link
// must be new.
func addAttendance(tx *gorm.DB, buyerID, auctionID int) error {
	if err := requireEnds[models.Buyer](tx, "buyer", "buyer_id = ?", buyerID, auctionID); err != nil {
		return err
	}
	if ok, err := exists[models.BuyerAuction](tx, "buyer_id = ? AND auction_id = ?", buyerID, auctionID); err != nil {
		return err
	} else if ok {
		return ErrDuplicateLink
	}
	return tx.Create(&models.BuyerAuction{BuyerID: buyerID, AuctionID: auctionID}).Error
}

func removeAttendance(tx *gorm.DB, buyerID, auctionID int) error {
	res := tx.Where("buyer_id = ? AND auction_id = ?", buyerID, auctionID).Delete(&models.BuyerAuction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: buyer %d did not attend auction %d", ErrInvalidReference, buyerID, auctionID)
	}
	return nil
}

// requireEnds checks that both ends of an auction link exist.
func requireEnds[T any](tx *gorm.DB, name, query string, id, auctionID int) error {
	if err := mustExist[T](tx, name, query, id); err != nil {
		return err
	}
	return mustExist[models.Auction](tx, "auction", "auction_id = ?", auctionID)
}
