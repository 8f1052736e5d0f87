package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// BuyerController serves /buyers and the buyer side of auction attendance.
type BuyerController struct {
	svc services.BuyerService
	log *zap.Logger
}

func NewBuyerController(svc services.BuyerService, log *zap.Logger) *BuyerController {
	return &BuyerController{svc: svc, log: log.Named("buyers")}
}

func (ctr *BuyerController) Register(g *echo.Group) {
	g.GET("/buyers", ctr.GetBuyers)
	g.POST("/buyers", ctr.CreateBuyer)
	g.GET("/buyers/:id", ctr.GetBuyer)
	g.PUT("/buyers/:id", ctr.UpdateBuyer)
	g.DELETE("/buyers/:id", ctr.DeleteBuyer)
	g.GET("/buyers/:id/auctions", ctr.GetBuyerAuctions)
	g.POST("/buyers/:id/auctions", ctr.AddBuyerAuction)
	g.DELETE("/buyers/:id/auctions/:auction_id", ctr.RemoveBuyerAuction)
}

func (ctr *BuyerController) GetBuyers(c echo.Context) error {
	ctr.log.Info("Get all buyers")
	buyers, err := ctr.svc.ListBuyers(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buyers)
}

func (ctr *BuyerController) GetBuyer(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	ctr.log.Info("Get buyer", zap.Int("buyer_id", id))
	buyer, err := ctr.svc.GetBuyer(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		ctr.log.Info("Not found buyer with id", zap.Int("buyer_id", id))
	}
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buyer)
}

func (ctr *BuyerController) CreateBuyer(c echo.Context) error {
	var req models.BuyerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	buyer, err := ctr.svc.CreateBuyer(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	ctr.log.Info("Created buyer", zap.Int("buyer_id", buyer.BuyerID))
	return c.JSON(http.StatusCreated, buyer)
}

func (ctr *BuyerController) UpdateBuyer(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	var req models.BuyerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	buyer, err := ctr.svc.UpdateBuyer(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buyer)
}

func (ctr *BuyerController) DeleteBuyer(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	if err := ctr.svc.DeleteBuyer(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	ctr.log.Info("Deleted buyer", zap.Int("buyer_id", id))
	return c.NoContent(http.StatusNoContent)
}

func (ctr *BuyerController) GetBuyerAuctions(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	auctions, err := ctr.svc.ListBuyerAuctions(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, auctions)
}

func (ctr *BuyerController) AddBuyerAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	var req models.AuctionLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := ctr.svc.AddBuyerAuction(c.Request().Context(), id, req.AuctionID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, models.BuyerAuction{BuyerID: id, AuctionID: req.AuctionID})
}

func (ctr *BuyerController) RemoveBuyerAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid buyer id")
	}
	auctionID, ok := pathID(c, "auction_id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	if err := ctr.svc.RemoveBuyerAuction(c.Request().Context(), id, auctionID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
