package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// BuildingController serves /buildings and the offers made for them.
type BuildingController struct {
	svc services.BuildingService
	log *zap.Logger
}

func NewBuildingController(svc services.BuildingService, log *zap.Logger) *BuildingController {
	return &BuildingController{svc: svc, log: log.Named("buildings")}
}

func (ctr *BuildingController) Register(g *echo.Group) {
	g.GET("/buildings", ctr.GetBuildings)
	g.POST("/buildings", ctr.CreateBuilding)
	g.GET("/buildings/:id", ctr.GetBuilding)
	g.PUT("/buildings/:id", ctr.UpdateBuilding)
	g.DELETE("/buildings/:id", ctr.DeleteBuilding)
	g.GET("/buildings/:id/auctions", ctr.GetBuildingAuctions)
	g.POST("/buildings/:id/auctions", ctr.AddBuildingAuction)
	g.DELETE("/buildings/:id/auctions/:auction_id", ctr.RemoveBuildingAuction)
}

func (ctr *BuildingController) GetBuildings(c echo.Context) error {
	ctr.log.Info("Get all buildings")
	buildings, err := ctr.svc.ListBuildings(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, buildings)
}

func (ctr *BuildingController) GetBuilding(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	building, err := ctr.svc.GetBuilding(c.Request().Context(), id)
	if err != nil {
		if errorStatus(err) == http.StatusNotFound {
			ctr.log.Info("Not found building with registration number", zap.Int("registration_number", id))
		}
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, building)
}

func (ctr *BuildingController) CreateBuilding(c echo.Context) error {
	var req models.BuildingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	building, err := ctr.svc.CreateBuilding(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, building)
}

func (ctr *BuildingController) UpdateBuilding(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	var req models.BuildingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	building, err := ctr.svc.UpdateBuilding(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, building)
}

func (ctr *BuildingController) DeleteBuilding(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	if err := ctr.svc.DeleteBuilding(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctr *BuildingController) GetBuildingAuctions(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	auctions, err := ctr.svc.ListBuildingAuctions(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, auctions)
}

func (ctr *BuildingController) AddBuildingAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	var req models.AuctionLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := ctr.svc.AddBuildingAuction(c.Request().Context(), id, req.AuctionID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, models.BuildingAuction{BuildingID: id, AuctionID: req.AuctionID})
}

func (ctr *BuildingController) RemoveBuildingAuction(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	auctionID, ok := pathID(c, "auction_id")
	if !ok {
		return badRequest(c, "invalid auction id")
	}
	if err := ctr.svc.RemoveBuildingAuction(c.Request().Context(), id, auctionID); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
