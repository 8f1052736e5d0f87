// Package seed holds the reference dataset the service ships with and the
// helper that loads it into an empty database.
package seed

import (
	"time"

	"github.com/Dmitrii14/enterprise-development/internal/models"
)

// Data is a full set of records, every table in insertion order.
type Data struct {
	Districts        []models.District
	Organizations    []models.Organization
	Buyers           []models.Buyer
	Buildings        []models.Building
	Auctions         []models.Auction
	BuildingAuctions []models.BuildingAuction
	BuyerAuctions    []models.BuyerAuction
	Privatized       []models.Privatized
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Dataset returns a fresh copy of the reference data: 6 districts,
// 8 organizations, 8 buyers, 10 buildings, 10 auctions and 6 sales.
func Dataset() Data {
	return Data{
		Districts: []models.District{
			{DistrictID: 1, DistrictName: "Промышленный"},
			{DistrictID: 2, DistrictName: "Кировский"},
			{DistrictID: 3, DistrictName: "Советский"},
			{DistrictID: 4, DistrictName: "Октябрьский"},
			{DistrictID: 5, DistrictName: "Куйбышевский"},
			{DistrictID: 6, DistrictName: "Железнодорожный"},
		},
		Organizations: []models.Organization{
			{OrganizationID: 1, OrganizationName: "СамараИнвест"},
			{OrganizationID: 2, OrganizationName: "ОАО Аукцион"},
			{OrganizationID: 3, OrganizationName: "Имущественные торги"},
			{OrganizationID: 4, OrganizationName: "Самара Тендер"},
			{OrganizationID: 5, OrganizationName: "АО Сбербанк-АСТ"},
			{OrganizationID: 6, OrganizationName: "АО ЕЭТП"},
			{OrganizationID: 7, OrganizationName: "Фонд имущества Самарской области"},
			{OrganizationID: 8, OrganizationName: "РТС-тендер"},
		},
		Buyers: []models.Buyer{
			{BuyerID: 1, LastName: "Мизягин", FirstName: "Евгений", MiddleName: "Викторович", PassportSeries: "3716", PassportNumber: "928715", Address: "г. Самара ул. Московское шоссе 252 кв. 186"},
			{BuyerID: 2, LastName: "Грачев", FirstName: "Михаил", MiddleName: "Александрович", PassportSeries: "6251", PassportNumber: "629574", Address: "г. Сызрань ул. Советская 15 кв. 3"},
			{BuyerID: 3, LastName: "Подлипаев", FirstName: "Олег", MiddleName: "Викторович", PassportSeries: "6295", PassportNumber: "746153", Address: "г. Новокуйбышевск ул. Советская 71 кв. 13"},
			{BuyerID: 4, LastName: "Корнеев", FirstName: "Николай", MiddleName: "Игоревич", PassportSeries: "9462", PassportNumber: "745625", Address: "г. Самара ул. Ново-садовая 25 кв. 77"},
			{BuyerID: 5, LastName: "Чубрин", FirstName: "Александр", MiddleName: "Андреевич", PassportSeries: "8572", PassportNumber: "547296", Address: "г. Самара ул. Авроры 52 кв. 11"},
			{BuyerID: 6, LastName: "Сомова", FirstName: "Надежда", MiddleName: "Николаевна", PassportSeries: "6356", PassportNumber: "782546", Address: "г. Новокуйбышевск ул. Карла Маркса 81 кв. 39"},
			{BuyerID: 7, LastName: "Мочалов", FirstName: "Андрей", MiddleName: "Сергеевич", PassportSeries: "6567", PassportNumber: "856456", Address: "г. Сызрань ул. Подшипниковая 12 кв. 2"},
			{BuyerID: 8, LastName: "Аскерова", FirstName: "Вера", MiddleName: "Игоревна", PassportSeries: "7145", PassportNumber: "624256", Address: "г. Самара ул. Фадеева 1 кв. 54"},
		},
		Buildings: []models.Building{
			{RegistrationNumber: 1, Address: "Ул. Московскосе шоссе д. 22 кв. 8", DistrictID: 1, Area: 43.9, FloorCount: 9, BuildDate: day(1980, 1, 10)},
			{RegistrationNumber: 2, Address: "Ул. Ново-вокзальная д. 1 кв. 19", DistrictID: 1, Area: 63.0, FloorCount: 9, BuildDate: day(1988, 10, 21)},
			{RegistrationNumber: 3, Address: "Ул. Фадеева д. 62", DistrictID: 1, Area: 1243.9, FloorCount: 2, BuildDate: day(1966, 6, 1)},
			{RegistrationNumber: 4, Address: "Ул. Стара-Загора д. 78 кв. 41", DistrictID: 1, Area: 98.3, FloorCount: 12, BuildDate: day(1978, 6, 13)},
			{RegistrationNumber: 5, Address: "Ул. Cолнечная д. 30", DistrictID: 1, Area: 298.3, FloorCount: 12, BuildDate: day(2006, 3, 1)},
			{RegistrationNumber: 6, Address: "Ул. Ставропольская д. 214 кв. 8", DistrictID: 2, Area: 33.9, FloorCount: 16, BuildDate: day(2007, 10, 11)},
			{RegistrationNumber: 7, Address: "Ул. Советская д. 119 кв. 1", DistrictID: 2, Area: 43.0, FloorCount: 2, BuildDate: day(1941, 3, 3)},
			{RegistrationNumber: 8, Address: "Ул. Мирная д. 165", DistrictID: 2, Area: 283.9, FloorCount: 2, BuildDate: day(2003, 7, 13)},
			{RegistrationNumber: 9, Address: "Ул. Черемшанская д. 158 кв. 41", DistrictID: 2, Area: 112.3, FloorCount: 5, BuildDate: day(1973, 5, 30)},
			{RegistrationNumber: 10, Address: "Ул. Юнных пионеров д. 154А", DistrictID: 2, Area: 2482.3, FloorCount: 3, BuildDate: day(1969, 12, 30)},
		},
		Auctions: []models.Auction{
			{AuctionID: 1, Date: day(2022, 3, 17), OrganizationID: 1},
			{AuctionID: 2, Date: day(2022, 3, 17), OrganizationID: 3},
			{AuctionID: 3, Date: day(2022, 3, 17), OrganizationID: 7},
			{AuctionID: 4, Date: day(2022, 3, 17), OrganizationID: 8},
			{AuctionID: 5, Date: day(2022, 3, 17), OrganizationID: 4},
			{AuctionID: 6, Date: day(2022, 3, 17), OrganizationID: 2},
			{AuctionID: 7, Date: day(2022, 3, 19), OrganizationID: 1},
			{AuctionID: 8, Date: day(2022, 3, 20), OrganizationID: 7},
			{AuctionID: 9, Date: day(2022, 3, 21), OrganizationID: 2},
			{AuctionID: 10, Date: day(2022, 3, 21), OrganizationID: 3},
		},
		BuildingAuctions: []models.BuildingAuction{
			{BuildingID: 1, AuctionID: 1}, {BuildingID: 9, AuctionID: 1},
			{BuildingID: 2, AuctionID: 2},
			{BuildingID: 3, AuctionID: 3},
			{BuildingID: 5, AuctionID: 4}, {BuildingID: 10, AuctionID: 4},
			{BuildingID: 4, AuctionID: 5}, {BuildingID: 7, AuctionID: 5},
			{BuildingID: 8, AuctionID: 6},
			{BuildingID: 9, AuctionID: 7},
			{BuildingID: 8, AuctionID: 8},
			{BuildingID: 10, AuctionID: 9},
			{BuildingID: 5, AuctionID: 10},
		},
		BuyerAuctions: attendance(),
		Privatized: []models.Privatized{
			{RegistrationNumber: 1, BuyerID: 1, AuctionID: 1, SaleDate: day(2022, 3, 17), StartPrice: 615827.99, EndPrice: 1297618.13},
			{RegistrationNumber: 2, BuyerID: 4, AuctionID: 2, SaleDate: day(2022, 3, 17), StartPrice: 862100.93, EndPrice: 1231971.10},
			{RegistrationNumber: 3, BuyerID: 8, AuctionID: 3, SaleDate: day(2022, 3, 17), StartPrice: 1062109.00, EndPrice: 14301872.17},
			{RegistrationNumber: 7, BuyerID: 2, AuctionID: 5, SaleDate: day(2022, 3, 17), StartPrice: 1846378.72, EndPrice: 2647635.37},
			{RegistrationNumber: 8, BuyerID: 1, AuctionID: 8, SaleDate: day(2022, 3, 20), StartPrice: 628476.17, EndPrice: 964372.09},
			{RegistrationNumber: 9, BuyerID: 8, AuctionID: 7, SaleDate: day(2022, 3, 19), StartPrice: 2657387.93, EndPrice: 4726478.00},
		},
	}
}

// attendance lists auction participants auction by auction.
func attendance() []models.BuyerAuction {
	everyone := []int{1, 2, 3, 4, 5, 6, 7, 8}
	byAuction := []struct {
		auctionID int
		buyerIDs  []int
	}{
		{1, []int{1, 2}},
		{2, []int{4, 5}},
		{3, []int{8, 7}},
		{4, []int{3, 6}},
		{5, everyone},
		{6, []int{1, 2}},
		{7, everyone},
		{8, everyone},
		{9, []int{7, 3}},
		{10, []int{8, 4, 1}},
	}

	var links []models.BuyerAuction
	for _, a := range byAuction {
		for _, id := range a.buyerIDs {
			links = append(links, models.BuyerAuction{BuyerID: id, AuctionID: a.auctionID})
		}
	}
	return links
}
