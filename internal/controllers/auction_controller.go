package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// AuctionController serves /auctions with their offered buildings and
// participating buyers.
type AuctionController struct {
	svc services.AuctionService
	log *zap.Logger
}

func NewAuctionController(svc services.AuctionService, log *zap.Logger) *AuctionController {
	return &AuctionController{svc: svc, log: log.Named("auctions")}
}

func (ctr *AuctionController) Register(g *echo.Group) {
	g.GET("/auctions", ctr.GetAuctions)
	g.POST("/auctions", ctr.CreateAuction)
	g.GET("/auctions/:id", ctr.GetAuction)
	g.PUT("/auctions/:id", ctr.UpdateAuction)
	g.DELETE("/auctions/:id", ctr.DeleteAuction)

	g.GET("/auctions/:id/buildings", ctr.GetAuctionBuildings)
	g.POST("/auctions/:id/buildings", ctr.AddAuctionBuilding)
	g.DELETE("/auctions/:id/buildings/:building_id", ctr.RemoveAuctionBuilding)

	g.GET("/auctions/:id/buyers", ctr.GetAuctionBuyers)
	g.POST("/auctions/:id/buyers", ctr.AddAuctionBuyer)
	g.DELETE("/auctions/:id/buyers/:buyer_id", ctr.RemoveAuctionBuyer)
}

func (ctr *AuctionController) GetAuctions(c echo.Context) error {
	ctr.log.Info("Get all auctions")
	auctions, err := ctr.svc.ListAuctions(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, auctions)
}

func (ctr *AuctionController) GetAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	auction, err := ctr.svc.GetAuction(c.Request().Context(), id)
	if err != nil {
		if errorStatus(err) == http.StatusNotFound {
			ctr.log.Info("Not found auction with id", zap.Int("auction_id", id))
		}
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, auction)
}

func (ctr *AuctionController) CreateAuction(c echo.Context) error {
	var req models.AuctionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	auction, err := ctr.svc.CreateAuction(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, auction)
}

func (ctr *AuctionController) UpdateAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	var req models.AuctionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	auction, err := ctr.svc.UpdateAuction(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, auction)
}

func (ctr *AuctionController) DeleteAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	if err := ctr.svc.DeleteAuction(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctr *AuctionController) GetAuctionBuildings(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	buildings, err := ctr.svc.ListAuctionBuildings(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buildings)
}

func (ctr *AuctionController) AddAuctionBuilding(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	var req models.BuildingLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := ctr.svc.AddAuctionBuilding(c.Request().Context(), id, req.BuildingID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, models.BuildingAuction{BuildingID: req.BuildingID, AuctionID: id})
}

func (ctr *AuctionController) RemoveAuctionBuilding(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	buildingID, ok := pathID(c, "building_id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	if err := ctr.svc.RemoveAuctionBuilding(c.Request().Context(), id, buildingID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctr *AuctionController) GetAuctionBuyers(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	buyers, err := ctr.svc.ListAuctionBuyers(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buyers)
}

func (ctr *AuctionController) AddAuctionBuyer(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	var req models.BuyerLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := ctr.svc.AddAuctionBuyer(c.Request().Context(), id, req.BuyerID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, models.BuyerAuction{BuyerID: req.BuyerID, AuctionID: id})
}

func (ctr *AuctionController) RemoveAuctionBuyer(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	buyerID, ok := pathID(c, "buyer_id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	if err := ctr.svc.RemoveAuctionBuyer(c.Request().Context(), id, buyerID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
