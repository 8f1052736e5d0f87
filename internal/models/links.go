package models

// BuildingAuction records that a building was offered at an auction.
type BuildingAuction struct {
	BuildingID int `gorm:"column:building_id;primaryKey;autoIncrement:false" json:"building_id"`
	AuctionID  int `gorm:"column:auction_id;primaryKey;autoIncrement:false;index" json:"auction_id"`
}

func (BuildingAuction) TableName() string {
	return "building_auctions"
}

// BuyerAuction records that a buyer attended an auction.
type BuyerAuction struct {
	BuyerID   int `gorm:"column:buyer_id;primaryKey;autoIncrement:false" json:"buyer_id"`
	AuctionID int `gorm:"column:auction_id;primaryKey;autoIncrement:false;index" json:"auction_id"`
}

func (BuyerAuction) TableName() string {
	return "buyer_auctions"
}
