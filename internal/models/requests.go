package models

import "time"

// Request bodies accepted by the API. Ids come from the path, so the POST/PUT
// shapes carry only the editable columns.

type BuyerRequest struct {
	LastName       string `json:"last_name"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
	Address        string `json:"address"`
}

// BuildingRequest may carry a registration number on create; zero lets the
// database assign one.
type BuildingRequest struct {
	RegistrationNumber int       `json:"registration_number"`
	Address            string    `json:"address"`
	DistrictID         int       `json:"district_id"`
	Area               float64   `json:"area"`
	FloorCount         int       `json:"floor_count"`
	BuildDate          time.Time `json:"build_date"`
}

type DistrictRequest struct {
	DistrictName string `json:"district_name"`
}

type OrganizationRequest struct {
	OrganizationName string `json:"organization_name"`
}

type AuctionRequest struct {
	Date           time.Time `json:"date"`
	OrganizationID int       `json:"organization_id"`
}

type PrivatizedRequest struct {
	RegistrationNumber int       `json:"registration_number"`
	BuyerID            int       `json:"buyer_id"`
	AuctionID          int       `json:"auction_id"`
	SaleDate           time.Time `json:"sale_date"`
	StartPrice         float64   `json:"start_price"`
	EndPrice           float64   `json:"end_price"`
}

// Link bodies name the far end of the association.

type AuctionLinkRequest struct {
	AuctionID int `json:"auction_id"`
}

type BuildingLinkRequest struct {
	BuildingID int `json:"building_id"`
}

type BuyerLinkRequest struct {
	BuyerID int `json:"buyer_id"`
}
