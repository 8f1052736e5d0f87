package report

import "github.com/Dmitrii14/enterprise-development/internal/models"

// Store is an immutable snapshot of the record tables the reports read.
// Iteration order is whatever order the caller supplied. A zero Store is
// valid and yields empty reports.
//
// Store holds no lock; callers that load it from a live database are
// responsible for taking a consistent snapshot, for example inside a read
// transaction.
type Store struct {
	Buyers           []models.Buyer
	Buildings        []models.Building
	Districts        []models.District
	Organizations    []models.Organization
	Auctions         []models.Auction
	BuildingAuctions []models.BuildingAuction
	BuyerAuctions    []models.BuyerAuction
	Privatized       []models.Privatized
}

// Collection names one table of a Store. Loaders use it to fetch only what a
// report needs.
type Collection uint8

const (
	Buyers Collection = 1 << iota
	Buildings
	Districts
	Organizations
	Auctions
	BuildingAuctions
	BuyerAuctions
	Privatized

	AllCollections = Buyers | Buildings | Districts | Organizations |
		Auctions | BuildingAuctions | BuyerAuctions | Privatized
)

// Has reports whether c includes every collection in other.
func (c Collection) Has(other Collection) bool {
	return c&other == other
}

// offersByAuction indexes BuildingAuction rows by auction id.
func (s *Store) offersByAuction() map[int][]models.BuildingAuction {
	return Index(s.BuildingAuctions, func(l models.BuildingAuction) int { return l.AuctionID })
}

// participantsByAuction indexes BuyerAuction rows by auction id.
func (s *Store) participantsByAuction() map[int][]models.BuyerAuction {
	return Index(s.BuyerAuctions, func(l models.BuyerAuction) int { return l.AuctionID })
}
