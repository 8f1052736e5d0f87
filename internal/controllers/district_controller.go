package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

type DistrictController struct {
	svc services.DistrictService
	log *zap.Logger
}

func NewDistrictController(svc services.DistrictService, log *zap.Logger) *DistrictController {
	return &DistrictController{svc: svc, log: log.Named("districts")}
}

func (ctr *DistrictController) Register(g *echo.Group) {
	g.GET("/districts", ctr.GetDistricts)
	g.POST("/districts", ctr.CreateDistrict)
	g.GET("/districts/:id", ctr.GetDistrict)
	g.PUT("/districts/:id", ctr.UpdateDistrict)
	g.DELETE("/districts/:id", ctr.DeleteDistrict)
}

func (ctr *DistrictController) GetDistricts(c echo.Context) error {
	ctr.log.Info("Get all districts")
	districts, err := ctr.svc.ListDistricts(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, districts)
}

func (ctr *DistrictController) GetDistrict(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid district id")
	}
	district, err := ctr.svc.GetDistrict(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, district)
}

func (ctr *DistrictController) CreateDistrict(c echo.Context) error {
	var req models.DistrictRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	district, err := ctr.svc.CreateDistrict(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, district)
}

func (ctr *DistrictController) UpdateDistrict(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid district id")
	}
	var req models.DistrictRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	district, err := ctr.svc.UpdateDistrict(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, district)
}

func (ctr *DistrictController) DeleteDistrict(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid district id")
	}
	if err := ctr.svc.DeleteDistrict(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
