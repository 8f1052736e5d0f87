package models

import "time"

// Auction is a dated sale event run by an organization. Offered buildings and
// attending buyers live in the BuildingAuction and BuyerAuction link tables.
type Auction struct {
	AuctionID      int       `gorm:"column:auction_id;primaryKey" json:"auction_id"`
	Date           time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	OrganizationID int       `gorm:"column:organization_id;not null;index" json:"organization_id"`
}

func (Auction) TableName() string {
	return "auctions"
}
