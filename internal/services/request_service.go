package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/report"
)

// RequestService runs the analytical reports over a consistent snapshot of
// the database.
type RequestService interface {
	Customers(ctx context.Context) ([]report.BuyerRow, error)
	AuctionsNotAllLotsSold(ctx context.Context) ([]report.AuctionRow, error)
	BuyersInDistrict(ctx context.Context, districtID int) ([]report.DistrictBuyerRow, error)
	// AddressesOfAuctionParticipants lists participants of each auction in
	// buyer id order, not in the order they were registered.
	AddressesOfAuctionParticipants(ctx context.Context, date time.Time) ([]report.BuyerAddressRow, error)
	TopBuyersByExpenses(ctx context.Context) ([]report.BuyerExpensesRow, error)
	AuctionsWithHighestIncome(ctx context.Context) ([]report.AuctionIncomeRow, error)
}

type requestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) RequestService {
	return &requestService{db: db}
}

func (s *requestService) Customers(ctx context.Context) ([]report.BuyerRow, error) {
	st, err := s.snapshot(ctx, report.Buyers)
	if err != nil {
		return nil, err
	}
	return st.AllCustomers(), nil
}

func (s *requestService) AuctionsNotAllLotsSold(ctx context.Context) ([]report.AuctionRow, error) {
	st, err := s.snapshot(ctx, report.Auctions|report.BuildingAuctions|report.Privatized)
	if err != nil {
		return nil, err
	}
	return st.AuctionsNotAllLotsSold(), nil
}

func (s *requestService) BuyersInDistrict(ctx context.Context, districtID int) ([]report.DistrictBuyerRow, error) {
	st, err := s.snapshot(ctx, report.Buyers|report.Buildings|report.Privatized)
	if err != nil {
		return nil, err
	}
	return st.BuyersInDistrict(districtID), nil
}

func (s *requestService) AddressesOfAuctionParticipants(ctx context.Context, date time.Time) ([]report.BuyerAddressRow, error) {
	st, err := s.snapshot(ctx, report.Buyers|report.Auctions|report.BuyerAuctions)
	if err != nil {
		return nil, err
	}
	return st.AddressesOfAuctionParticipants(date), nil
}

func (s *requestService) TopBuyersByExpenses(ctx context.Context) ([]report.BuyerExpensesRow, error) {
	st, err := s.snapshot(ctx, report.Buyers|report.Privatized)
	if err != nil {
		return nil, err
	}
	return st.TopBuyersByExpenses(), nil
}

func (s *requestService) AuctionsWithHighestIncome(ctx context.Context) ([]report.AuctionIncomeRow, error) {
	st, err := s.snapshot(ctx, report.Auctions|report.Privatized)
	if err != nil {
		return nil, err
	}
	return st.AuctionsWithHighestIncome(), nil
}

// snapshot loads the requested tables inside one read transaction, each
// ordered by its key so reports are reproducible.
func (s *requestService) snapshot(ctx context.Context, need report.Collection) (*report.Store, error) {
	st := &report.Store{}
	loads := []struct {
		c     report.Collection
		dest  any
		order string
	}{
		{report.Buyers, &st.Buyers, "buyer_id"},
		{report.Buildings, &st.Buildings, "registration_number"},
		{report.Districts, &st.Districts, "district_id"},
		{report.Organizations, &st.Organizations, "organization_id"},
		{report.Auctions, &st.Auctions, "auction_id"},
		{report.BuildingAuctions, &st.BuildingAuctions, "auction_id, building_id"},
		{report.BuyerAuctions, &st.BuyerAuctions, "auction_id, buyer_id"},
		{report.Privatized, &st.Privatized, "registration_number"},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, l := range loads {
			if !need.Has(l.c) {
				continue
			}
			if err := tx.Order(l.order).Find(l.dest).Error; err != nil {
				return err
			}
		}
		return nil
	}, s.readOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load report snapshot: %w", err)
	}
	return st, nil
}

// readOptions asks servers for a repeatable-read snapshot. SQLite
// transactions are already serializable and reject explicit levels.
func (s *requestService) readOptions() []*sql.TxOptions {
	if s.db.Dialector.Name() == "sqlite" {
		return nil
	}
	return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
}
