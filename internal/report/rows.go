package report

import (
	"time"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// Rows returned by the reports. They are flat on purpose: no nested entities,
// only the columns each report promises.

type BuyerRow struct {
	BuyerID        int    `json:"buyer_id"`
	LastName       string `json:"last_name"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
	Address        string `json:"address"`
}

type AuctionRow struct {
	AuctionID      int       `json:"auction_id"`
	Date           time.Time `json:"date"`
	OrganizationID int       `json:"organization_id"`
}

// DistrictBuyerRow carries CountSold, the number of sales in the whole
// district. It repeats on every row of the district; it is not per buyer.
type DistrictBuyerRow struct {
	BuyerID    int    `json:"buyer_id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	CountSold  int    `json:"count_sold"`
}

type BuyerAddressRow struct {
	BuyerID int    `json:"buyer_id"`
	Address string `json:"address"`
}

type BuyerExpensesRow struct {
	BuyerID  int     `json:"buyer_id"`
	Expenses float64 `json:"expenses"`
}

type AuctionIncomeRow struct {
	AuctionID int     `json:"auction_id"`
	Income    float64 `json:"income"`
}

func buyerRow(b models.Buyer) BuyerRow {
	return BuyerRow{
		BuyerID:        b.BuyerID,
		LastName:       b.LastName,
		FirstName:      b.FirstName,
		MiddleName:     b.MiddleName,
		PassportSeries: b.PassportSeries,
		PassportNumber: b.PassportNumber,
		Address:        b.Address,
	}
}

func auctionRow(a models.Auction) AuctionRow {
	return AuctionRow{
		AuctionID:      a.AuctionID,
		Date:           a.Date,
		OrganizationID: a.OrganizationID,
	}
}
