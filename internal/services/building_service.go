package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// BuildingService manages the fund's buildings and the auctions they were
// offered at.
type BuildingService interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	GetBuilding(ctx context.Context, id int) (*models.Building, error)
	CreateBuilding(ctx context.Context, req models.BuildingRequest) (*models.Building, error)
	UpdateBuilding(ctx context.Context, id int, req models.BuildingRequest) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id int) error

	ListBuildingAuctions(ctx context.Context, id int) ([]models.Auction, error)
	AddBuildingAuction(ctx context.Context, buildingID, auctionID int) error
	RemoveBuildingAuction(ctx context.Context, buildingID, auctionID int) error
}

type buildingService struct {
	db *gorm.DB
}

func NewBuildingService(db *gorm.DB) BuildingService {
	return &buildingService{db: db}
}

func (s *buildingService) ListBuildings(ctx context.Context) ([]models.Building, error) {
	buildings := []models.Building{}
	if err := s.db.WithContext(ctx).Order("registration_number").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (s *buildingService) GetBuilding(ctx context.Context, id int) (*models.Building, error) {
	var b models.Building
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

// checkBuilding validates the body and the district it points at.
func checkBuilding(tx *gorm.DB, req models.BuildingRequest) error {
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if req.Area < 0 || req.FloorCount < 0 {
		return fmt.Errorf("%w: area and floor_count must not be negative", ErrValidation)
	}
	return mustExist[models.District](tx, "district", "district_id = ?", req.DistrictID)
}

func applyBuilding(b *models.Building, req models.BuildingRequest) {
	b.Address = req.Address
	b.DistrictID = req.DistrictID
	b.Area = req.Area
	b.FloorCount = req.FloorCount
	b.BuildDate = req.BuildDate
}

func (s *buildingService) CreateBuilding(ctx context.Context, req models.BuildingRequest) (*models.Building, error) {
	b := models.Building{RegistrationNumber: req.RegistrationNumber}
	applyBuilding(&b, req)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkBuilding(tx, req); err != nil {
			return err
		}
		if req.RegistrationNumber != 0 {
			ok, err := exists[models.Building](tx, "registration_number = ?", req.RegistrationNumber)
			if err != nil {
				return err
			}
			if ok {
				return fmt.Errorf("%w: building %d", ErrAlreadyExists, req.RegistrationNumber)
			}
		}
		return tx.Create(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBuilding rewrites the editable columns. A registration number in the
// body, when present, must match id.
func (s *buildingService) UpdateBuilding(ctx context.Context, id int, req models.BuildingRequest) (*models.Building, error) {
	if req.RegistrationNumber != 0 && req.RegistrationNumber != id {
		return nil, fmt.Errorf("%w: body registration_number %d, path %d", ErrKeyMismatch, req.RegistrationNumber, id)
	}
	var b models.Building
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return notFound(err)
		}
		if err := checkBuilding(tx, req); err != nil {
			return err
		}
		applyBuilding(&b, req)
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *buildingService) DeleteBuilding(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Building](tx, "registration_number = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		if err := tx.Where("registration_number = ?", id).Delete(&models.Privatized{}).Error; err != nil {
			return err
		}
		if err := tx.Where("building_id = ?", id).Delete(&models.BuildingAuction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Building{}, id).Error
	})
}

func (s *buildingService) ListBuildingAuctions(ctx context.Context, id int) ([]models.Auction, error) {
	auctions := []models.Auction{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Building](tx, "registration_number = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		return tx.Joins("JOIN building_auctions ON building_auctions.auction_id = auctions.auction_id").
			Where("building_auctions.building_id = ?", id).
			Order("auctions.auction_id").
			Find(&auctions).Error
	})
	if err != nil {
		return nil, err
	}
	return auctions, nil
}

func (s *buildingService) AddBuildingAuction(ctx context.Context, buildingID, auctionID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return addOffer(tx, buildingID, auctionID)
	})
}

func (s *buildingService) RemoveBuildingAuction(ctx context.Context, buildingID, auctionID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return removeOffer(tx, buildingID, auctionID)
	})
}

// addOffer records that a building was put up at an auction.
func addOffer(tx *gorm.DB, buildingID, auctionID int) error {
	if err := requireEnds[models.Building](tx, "building", "registration_number = ?", buildingID, auctionID); err != nil {
		return err
	}
	if ok, err := exists[models.BuildingAuction](tx, "building_id = ? AND auction_id = ?", buildingID, auctionID); err != nil {
		return err
	} else if ok {
		return ErrDuplicateLink
	}
	return tx.Create(&models.BuildingAuction{BuildingID: buildingID, AuctionID: auctionID}).Error
}

// removeOffer refuses to drop an offer that a sale record points at.
func removeOffer(tx *gorm.DB, buildingID, auctionID int) error {
	sold, err := exists[models.Privatized](tx, "registration_number = ? AND auction_id = ?", buildingID, auctionID)
	if err != nil {
		return err
	}
	if sold {
		return fmt.Errorf("%w: building %d was sold at auction %d", ErrInUse, buildingID, auctionID)
	}
	res := tx.Where("building_id = ? AND auction_id = ?", buildingID, auctionID).Delete(&models.BuildingAuction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: building %d was not offered at auction %d", ErrInvalidReference, buildingID, auctionID)
	}
	return nil
}
