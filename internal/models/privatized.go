package models

import "time"

// Privatized is the outcome of a successful sale. RegistrationNumber is the
// sold building's id, so a building can be sold at most once.
type Privatized struct {
	RegistrationNumber int       `gorm:"column:registration_number;primaryKey;autoIncrement:false" json:"registration_number"`
	BuyerID            int       `gorm:"column:buyer_id;not null;index" json:"buyer_id"`
	AuctionID          int       `gorm:"column:auction_id;not null;index" json:"auction_id"`
	SaleDate           time.Time `gorm:"column:sale_date;type:date" json:"sale_date"`
	StartPrice         float64   `gorm:"column:start_price;type:double precision" json:"start_price"`
	EndPrice           float64   `gorm:"column:end_price;type:double precision" json:"end_price"`
}

func (Privatized) TableName() string {
	return "privatized"
}
