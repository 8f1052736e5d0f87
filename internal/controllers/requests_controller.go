package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/export"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// RequestsController serves the analytical reports under /requests. Every
// report answers JSON by default and an XLSX workbook with ?format=xlsx.
type RequestsController struct {
	svc services.RequestService
	log *zap.Logger
}

func NewRequestsController(svc services.RequestService, log *zap.Logger) *RequestsController {
	return &RequestsController{svc: svc, log: log.Named("requests")}
}

func (ctr *RequestsController) Register(g *echo.Group) {
	r := g.Group("/requests")
	r.GET("/customers", ctr.GetCustomers)
	r.GET("/auctions-not-all-lots-sold", ctr.GetAuctionsNotAllLotsSold)
	r.GET("/districts/:id/buyers", ctr.GetBuyersInDistrict)
	r.GET("/participants/:date/addresses", ctr.GetParticipantAddresses)
	r.GET("/top-buyers-by-expenses", ctr.GetTopBuyersByExpenses)
	r.GET("/auctions-with-highest-income", ctr.GetAuctionsWithHighestIncome)
}

// render answers rows as JSON or, when asked, as a workbook named file.xlsx.
func render[T any](c echo.Context, log *zap.Logger, rows []T, sheet func([]T) export.Sheet, file string) error {
	switch c.QueryParam("format") {
	case "", "json":
		return c.JSON(http.StatusOK, rows)
	case "xlsx":
		data, err := export.Write(sheet(rows))
		if err != nil {
			return fail(c, log, err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.xlsx", file))
		return c.Blob(http.StatusOK, export.ContentType, data)
	default:
		return badRequest(c, "format must be json or xlsx")
	}
}

func (ctr *RequestsController) GetCustomers(c echo.Context) error {
	ctr.log.Info("Get all customers")
	rows, err := ctr.svc.Customers(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.Customers, "customers")
}

func (ctr *RequestsController) GetAuctionsNotAllLotsSold(c echo.Context) error {
	ctr.log.Info("Get auctions where not all lots were sold")
	rows, err := ctr.svc.AuctionsNotAllLotsSold(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.Auctions, "auctions-not-all-lots-sold")
}

func (ctr *RequestsController) GetBuyersInDistrict(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid district id")
	}
	ctr.log.Info("Get buyers of buildings in district", zap.Int("district_id", id))
	rows, err := ctr.svc.BuyersInDistrict(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.DistrictBuyers, fmt.Sprintf("district-%d-buyers", id))
}

func (ctr *RequestsController) GetParticipantAddresses(c echo.Context) error {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}
	ctr.log.Info("Get addresses of auction participants", zap.String("date", date.Format(time.DateOnly)))
	rows, err := ctr.svc.AddressesOfAuctionParticipants(c.Request().Context(), date)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.ParticipantAddresses, "participants-"+date.Format(time.DateOnly))
}

func (ctr *RequestsController) GetTopBuyersByExpenses(c echo.Context) error {
	ctr.log.Info("Get top buyers by expenses")
	rows, err := ctr.svc.TopBuyersByExpenses(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.BuyerExpenses, "top-buyers-by-expenses")
}

func (ctr *RequestsController) GetAuctionsWithHighestIncome(c echo.Context) error {
	ctr.log.Info("Get auctions with the highest income")
	rows, err := ctr.svc.AuctionsWithHighestIncome(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return render(c, ctr.log, rows, export.AuctionIncome, "auctions-with-highest-income")
}
