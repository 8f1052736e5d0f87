package export

import "github.com/Dmitrii14/enterprise-development/internal/report"

const dateLayout = "2006-01-02"

func Customers(rows []report.BuyerRow) Sheet {
	return Table("Customers",
		[]string{"Buyer ID", "Last name", "First name", "Middle name", "Passport series", "Passport number", "Address"},
		rows, func(r report.BuyerRow) []any {
			return []any{r.BuyerID, r.LastName, r.FirstName, r.MiddleName, r.PassportSeries, r.PassportNumber, r.Address}
		})
}

func Auctions(rows []report.AuctionRow) Sheet {
	return Table("Auctions",
		[]string{"Auction ID", "Date", "Organization ID"},
		rows, func(r report.AuctionRow) []any {
			return []any{r.AuctionID, r.Date.Format(dateLayout), r.OrganizationID}
		})
}

func DistrictBuyers(rows []report.DistrictBuyerRow) Sheet {
	return Table("District buyers",
		[]string{"Buyer ID", "Last name", "First name", "Middle name", "Sold in district"},
		rows, func(r report.DistrictBuyerRow) []any {
			return []any{r.BuyerID, r.LastName, r.FirstName, r.MiddleName, r.CountSold}
		})
}

func ParticipantAddresses(rows []report.BuyerAddressRow) Sheet {
	return Table("Participant addresses",
		[]string{"Buyer ID", "Address"},
		rows, func(r report.BuyerAddressRow) []any {
			return []any{r.BuyerID, r.Address}
		})
}

func BuyerExpenses(rows []report.BuyerExpensesRow) Sheet {
	return Table("Top buyers",
		[]string{"Buyer ID", "Expenses"},
		rows, func(r report.BuyerExpensesRow) []any {
			return []any{r.BuyerID, r.Expenses}
		})
}

func AuctionIncome(rows []report.AuctionIncomeRow) Sheet {
	return Table("Auction income",
		[]string{"Auction ID", "Income"},
		rows, func(r report.AuctionIncomeRow) []any {
			return []any{r.AuctionID, r.Income}
		})
}
