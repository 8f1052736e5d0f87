package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

type DistrictService interface {
	ListDistricts(ctx context.Context) ([]models.District, error)
	GetDistrict(ctx context.Context, id int) (*models.District, error)
	CreateDistrict(ctx context.Context, req models.DistrictRequest) (*models.District, error)
	UpdateDistrict(ctx context.Context, id int, req models.DistrictRequest) (*models.District, error)
	// DeleteDistrict fails with ErrInUse while buildings are located in it.
	DeleteDistrict(ctx context.Context, id int) error
}

type districtService struct {
	db *gorm.DB
}

func NewDistrictService(db *gorm.DB) DistrictService {
	return &districtService{db: db}
}

func (s *districtService) ListDistricts(ctx context.Context) ([]models.District, error) {
	districts := []models.District{}
	if err := s.db.WithContext(ctx).Order("district_id").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (s *districtService) GetDistrict(ctx context.Context, id int) (*models.District, error) {
	var d models.District
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func validateDistrict(req models.DistrictRequest) error {
	if strings.TrimSpace(req.DistrictName) == "" {
		return fmt.Errorf("%w: district_name is required", ErrValidation)
	}
	return nil
}

func (s *districtService) CreateDistrict(ctx context.Context, req models.DistrictRequest) (*models.District, error) {
	if err := validateDistrict(req); err != nil {
		return nil, err
	}
	d := models.District{DistrictName: req.DistrictName}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *districtService) UpdateDistrict(ctx context.Context, id int, req models.DistrictRequest) (*models.District, error) {
	if err := validateDistrict(req); err != nil {
		return nil, err
	}
	var d models.District
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, id).Error; err != nil {
			return notFound(err)
		}
		d.DistrictName = req.DistrictName
		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *districtService) DeleteDistrict(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.District](tx, "district_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		if ok, err := exists[models.Building](tx, "district_id = ?", id); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("%w: district %d has buildings", ErrInUse, id)
		}
		return tx.Delete(&models.District{}, id).Error
	})
}
