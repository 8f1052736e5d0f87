package report

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// TopBuyersLimit caps the TopBuyersByExpenses report.
const TopBuyersLimit = 5

// nameCollator orders buyer names. Names are Cyrillic, so the Russian
// tailoring gives alphabetical order; the result is deterministic for any
// input. Collators keep internal buffers, so each query makes its own.
func nameCollator() *collate.Collator {
	return collate.New(language.Russian)
}

// AllCustomers returns every buyer in store order.
func (s *Store) AllCustomers() []BuyerRow {
	return Select(s.Buyers, buyerRow)
}

// AuctionsNotAllLotsSold returns auctions whose number of sales differs from
// the number of buildings offered.
//
// Sales are grouped per auction and inner-joined to auctions, so an auction
// with no sales at all forms no group and is not reported.
func (s *Store) AuctionsNotAllLotsSold() []AuctionRow {
	type soldCount struct {
		auctionID int
		sold      int
	}
	sold := Select(
		GroupBy(s.Privatized, func(p models.Privatized) int { return p.AuctionID }),
		func(g Group[int, models.Privatized]) soldCount {
			return soldCount{auctionID: g.Key, sold: Count(g.Items, nil)}
		},
	)

	offers := s.offersByAuction()
	joined := Join(s.Auctions, sold,
		func(a models.Auction) int { return a.AuctionID },
		func(c soldCount) int { return c.auctionID },
	)
	matched := Where(joined, func(p Pair[models.Auction, soldCount]) bool {
		return p.Right.sold != len(offers[p.Left.AuctionID])
	})
	return Select(matched, func(p Pair[models.Auction, soldCount]) AuctionRow {
		return auctionRow(p.Left)
	})
}

// BuyersInDistrict returns the buyers of buildings located in districtID,
// one row per purchase, ordered by last name then first name. CountSold is
// the district-wide number of sales.
func (s *Store) BuyersInDistrict(districtID int) []DistrictBuyerRow {
	type purchase struct {
		buyer    models.Buyer
		building models.Building
	}
	type districtSales struct {
		districtID int
		countSold  int
	}
	type row struct {
		purchase
		countSold int
	}

	byBuyer := Join(s.Buyers, s.Privatized,
		func(b models.Buyer) int { return b.BuyerID },
		func(p models.Privatized) int { return p.BuyerID },
	)
	purchases := Select(
		Join(byBuyer, s.Buildings,
			func(p Pair[models.Buyer, models.Privatized]) int { return p.Right.RegistrationNumber },
			func(b models.Building) int { return b.RegistrationNumber },
		),
		func(p Pair[Pair[models.Buyer, models.Privatized], models.Building]) purchase {
			return purchase{buyer: p.Left.Left, building: p.Right}
		},
	)

	soldBuildings := Join(s.Buildings, s.Privatized,
		func(b models.Building) int { return b.RegistrationNumber },
		func(p models.Privatized) int { return p.RegistrationNumber },
	)
	perDistrict := Select(
		GroupBy(soldBuildings, func(p Pair[models.Building, models.Privatized]) int { return p.Left.DistrictID }),
		func(g Group[int, Pair[models.Building, models.Privatized]]) districtSales {
			return districtSales{districtID: g.Key, countSold: Count(g.Items, nil)}
		},
	)

	rows := Select(
		Join(purchases, perDistrict,
			func(p purchase) int { return p.building.DistrictID },
			func(d districtSales) int { return d.districtID },
		),
		func(p Pair[purchase, districtSales]) row {
			return row{purchase: p.Left, countSold: p.Right.countSold}
		},
	)
	rows = Where(rows, func(r row) bool {
		return r.building.DistrictID == districtID && r.countSold > 0
	})

	coll := nameCollator()
	rows = OrderBy(rows,
		AscFunc(func(r row) string { return r.buyer.LastName }, coll.CompareString),
		AscFunc(func(r row) string { return r.buyer.FirstName }, coll.CompareString),
	)

	return Select(rows, func(r row) DistrictBuyerRow {
		return DistrictBuyerRow{
			BuyerID:    r.buyer.BuyerID,
			LastName:   r.buyer.LastName,
			FirstName:  r.buyer.FirstName,
			MiddleName: r.buyer.MiddleName,
			CountSold:  r.countSold,
		}
	})
}

// AddressesOfAuctionParticipants returns the address of every participant of
// every auction held on date. A buyer attending several such auctions appears
// once per auction.
func (s *Store) AddressesOfAuctionParticipants(date time.Time) []BuyerAddressRow {
	participants := s.participantsByAuction()
	onDate := Where(s.Auctions, func(a models.Auction) bool { return sameDay(a.Date, date) })
	attendance := SelectMany(onDate, func(a models.Auction) []models.BuyerAuction {
		return participants[a.AuctionID]
	})

	joined := Join(attendance, s.Buyers,
		func(l models.BuyerAuction) int { return l.BuyerID },
		func(b models.Buyer) int { return b.BuyerID },
	)
	return Select(joined, func(p Pair[models.BuyerAuction, models.Buyer]) BuyerAddressRow {
		return BuyerAddressRow{BuyerID: p.Right.BuyerID, Address: p.Right.Address}
	})
}

// TopBuyersByExpenses returns up to TopBuyersLimit buyers ordered by the sum
// of the final prices they paid, largest first.
func (s *Store) TopBuyersByExpenses() []BuyerExpensesRow {
	sales := Join(s.Privatized, s.Buyers,
		func(p models.Privatized) int { return p.BuyerID },
		func(b models.Buyer) int { return b.BuyerID },
	)
	groups := GroupBy(sales, func(p Pair[models.Privatized, models.Buyer]) int { return p.Left.BuyerID })

	rows := Select(groups, func(g Group[int, Pair[models.Privatized, models.Buyer]]) BuyerExpensesRow {
		return BuyerExpensesRow{
			BuyerID:  g.Key,
			Expenses: Sum(g.Items, func(p Pair[models.Privatized, models.Buyer]) float64 { return p.Left.EndPrice }),
		}
	})
	rows = OrderBy(rows, Desc(func(r BuyerExpensesRow) float64 { return r.Expenses }))
	return Take(rows, TopBuyersLimit)
}

// AuctionsWithHighestIncome returns every auction with at least one sale,
// ordered by total markup (end price minus start price), largest first.
func (s *Store) AuctionsWithHighestIncome() []AuctionIncomeRow {
	sales := Join(s.Privatized, s.Auctions,
		func(p models.Privatized) int { return p.AuctionID },
		func(a models.Auction) int { return a.AuctionID },
	)
	groups := GroupBy(sales, func(p Pair[models.Privatized, models.Auction]) int { return p.Left.AuctionID })

	rows := Select(groups, func(g Group[int, Pair[models.Privatized, models.Auction]]) AuctionIncomeRow {
		return AuctionIncomeRow{
			AuctionID: g.Key,
			Income: Sum(g.Items, func(p Pair[models.Privatized, models.Auction]) float64 {
				return p.Left.EndPrice - p.Left.StartPrice
			}),
		}
	})
	return OrderBy(rows, Desc(func(r AuctionIncomeRow) float64 { return r.Income }))
}

// sameDay compares calendar dates, each read in its own location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
