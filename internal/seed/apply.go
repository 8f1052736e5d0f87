package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/report"
)

// serialColumns are the auto-increment keys whose sequences must be moved
// past the seeded ids on PostgreSQL.
var serialColumns = []struct{ table, column string }{
	{"districts", "district_id"},
	{"organizations", "organization_id"},
	{"buyers", "buyer_id"},
	{"buildings", "registration_number"},
	{"auctions", "auction_id"},
}

// Apply inserts the reference dataset when the database holds no buyers.
// It reports whether anything was written.
func Apply(ctx context.Context, db *gorm.DB) (bool, error) {
	var buyers int64
	if err := db.WithContext(ctx).Model(&models.Buyer{}).Count(&buyers).Error; err != nil {
		return false, fmt.Errorf("count buyers: %w", err)
	}
	if buyers > 0 {
		return false, nil
	}

	d := Dataset()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []any{
			&d.Districts,
			&d.Organizations,
			&d.Buyers,
			&d.Buildings,
			&d.Auctions,
			&d.BuildingAuctions,
			&d.BuyerAuctions,
			&d.Privatized,
		}
		for _, rows := range tables {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}

		if tx.Dialector.Name() != "postgres" {
			return nil
		}
		for _, c := range serialColumns {
			q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT MAX(%s) FROM %s))",
				c.table, c.column, c.column, c.table)
			if err := tx.Exec(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed dataset: %w", err)
	}
	return true, nil
}

// Store returns the dataset as a report snapshot.
func (d Data) Store() *report.Store {
	return &report.Store{
		Buyers:           d.Buyers,
		Buildings:        d.Buildings,
		Districts:        d.Districts,
		Organizations:    d.Organizations,
		Auctions:         d.Auctions,
		BuildingAuctions: d.BuildingAuctions,
		BuyerAuctions:    d.BuyerAuctions,
		Privatized:       d.Privatized,
	}
}
