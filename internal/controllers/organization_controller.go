package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/services"
)

type OrganizationController struct {
	svc services.OrganizationService
	log *zap.Logger
}

func NewOrganizationController(svc services.OrganizationService, log *zap.Logger) *OrganizationController {
	return &OrganizationController{svc: svc, log: log.Named("organizations")}
}

func (ctr *OrganizationController) Register(g *echo.Group) {
	g.GET("/organizations", ctr.GetOrganizations)
	g.POST("/organizations", ctr.CreateOrganization)
	g.GET("/organizations/:id", ctr.GetOrganization)
	g.PUT("/organizations/:id", ctr.UpdateOrganization)
	g.DELETE("/organizations/:id", ctr.DeleteOrganization)
}

func (ctr *OrganizationController) GetOrganizations(c echo.Context) error {
	ctr.log.Info("Get all organizations")
	organizations, err := ctr.svc.ListOrganizations(c.Request().Context())
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, organizations)
}

func (ctr *OrganizationController) GetOrganization(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid organization id")
	}
	organization, err := ctr.svc.GetOrganization(c.Request().Context(), id)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, organization)
}

func (ctr *OrganizationController) CreateOrganization(c echo.Context) error {
	var req models.OrganizationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	organization, err := ctr.svc.CreateOrganization(c.Request().Context(), req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusCreated, organization)
}

func (ctr *OrganizationController) UpdateOrganization(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid organization id")
	}
	var req models.OrganizationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	organization, err := ctr.svc.UpdateOrganization(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, ctr.log, err)
	}
	return c.JSON(http.StatusOK, organization)
}

func (ctr *OrganizationController) DeleteOrganization(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid organization id")
	}
	if err := ctr.svc.DeleteOrganization(c.Request().Context(), id); err != nil {
		return fail(c, ctr.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
