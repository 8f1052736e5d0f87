package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// OrganizationService manages the organizers of auctions.
type OrganizationService interface {
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	GetOrganization(ctx context.Context, id int) (*models.Organization, error)
	CreateOrganization(ctx context.Context, req models.OrganizationRequest) (*models.Organization, error)
	UpdateOrganization(ctx context.Context, id int, req models.OrganizationRequest) (*models.Organization, error)
	// DeleteOrganization fails with ErrInUse while it has auctions.
	DeleteOrganization(ctx context.Context, id int) error
}

type organizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) OrganizationService {
	return &organizationService{db: db}
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	organizations := []models.Organization{}
	if err := s.db.WithContext(ctx).Order("organization_id").Find(&organizations).Error; err != nil {
		return nil, err
	}
	return organizations, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, id int) (*models.Organization, error) {
	var o models.Organization
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func validateOrganization(req models.OrganizationRequest) error {
	if strings.TrimSpace(req.OrganizationName) == "" {
		return fmt.Errorf("%w: organization_name is required", ErrValidation)
	}
	return nil
}

func (s *organizationService) CreateOrganization(ctx context.Context, req models.OrganizationRequest) (*models.Organization, error) {
	if err := validateOrganization(req); err != nil {
		return nil, err
	}
	o := models.Organization{OrganizationName: req.OrganizationName}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, id int, req models.OrganizationRequest) (*models.Organization, error) {
	if err := validateOrganization(req); err != nil {
		return nil, err
	}
	var o models.Organization
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, id).Error; err != nil {
			return notFound(err)
		}
		o.OrganizationName = req.OrganizationName
		return tx.Save(&o).Error
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *organizationService) DeleteOrganization(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := exists[models.Organization](tx, "organization_id = ?", id); err != nil {
			return err
		} else if !ok {
			return ErrNotFound
		}
		if ok, err := exists[models.Auction](tx, "organization_id = ?", id); err != nil {
			return err
		} else if ok {
			return fmt.Errorf("%w: organization %d has auctions", ErrInUse, id)
		}
		return tx.Delete(&models.Organization{}, id).Error
	})
}
