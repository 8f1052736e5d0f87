package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

// PrivatizedController serves /privatized. The path id is the sold
// building's registration number.
type PrivatizedController struct {
	svc services.PrivatizedService
	log *zap.Logger
}

func NewPrivatizedController(svc services.PrivatizedService, log *zap.Logger) *PrivatizedController {
	return &PrivatizedController{svc: svc, log: log.Named("privatized")}
}

func (ctr *PrivatizedController) Register(g *echo.Group) {
	g.GET("/privatized", ctr.GetPrivatizedList)
	g.POST("/privatized", ctr.CreatePrivatized)
	g.GET("/privatized/:id", ctr.GetPrivatized)
	g.PUT("/privatized/:id", ctr.UpdatePrivatized)
	g.DELETE("/privatized/:id", ctr.DeletePrivatized)
}

func (ctr *PrivatizedController) GetPrivatizedList(c echo.Context) error {
	ctr.log.Info("Get all privatized buildings")
	sales, err := ctr.svc.ListPrivatized(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, sales)
}

func (ctr *PrivatizedController) GetPrivatized(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	sale, err := ctr.svc.GetPrivatized(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, sale)
}

func (ctr *PrivatizedController) CreatePrivatized(c echo.Context) error {
	var req models.PrivatizedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	sale, err := ctr.svc.CreatePrivatized(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	ctr.log.Info("Registered sale",
		zap.Int("registration_number", sale.RegistrationNumber),
		zap.Int("auction_id", sale.AuctionID))
	return c.JSON(http.StatusCreated, sale)
}

func (ctr *PrivatizedController) UpdatePrivatized(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	var req models.PrivatizedRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	sale, err := ctr.svc.UpdatePrivatized(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, sale)
}

func (ctr *PrivatizedController) DeletePrivatized(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid registration number")
	}
	if err := ctr.svc.DeletePrivatized(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
