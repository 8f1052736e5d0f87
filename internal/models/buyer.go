package models

// Buyer is a person who attends auctions and may purchase buildings.
type Buyer struct {
	BuyerID        int    `gorm:"column:buyer_id;primaryKey" json:"buyer_id"`
	LastName       string `gorm:"column:last_name;size:100;not null" json:"last_name"`
	FirstName      string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	MiddleName     string `gorm:"column:middle_name;size:100" json:"middle_name"`
	PassportSeries string `gorm:"column:passport_series;size:4" json:"passport_series"`
	PassportNumber string `gorm:"column:passport_number;size:6" json:"passport_number"`
	Address        string `gorm:"column:address;size:255" json:"address"`
}

func (Buyer) TableName() string {
	return "buyers"
}
