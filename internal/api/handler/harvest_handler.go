package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// HarvestHandler serves harvest lot routes, mounted both at
// /api/hasil_panen and under the manager area.
type HarvestHandler struct {
	harvests ports.HarvestService
}

func NewHarvestHandler(harvests ports.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvests: harvests}
}

func (h *HarvestHandler) List(c echo.Context) error {
	harvests, err := h.harvests.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, harvests)
}

func (h *HarvestHandler) Get(c echo.Context) error {
	harvest, err := h.harvests.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, harvest)
}

func (h *HarvestHandler) Create(c echo.Context) error {
	var harvest domain.Harvest
	if err := c.Bind(&harvest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.harvests.Create(c.Request().Context(), &harvest)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *HarvestHandler) Update(c echo.Context) error {
	var harvest domain.Harvest
	if err := c.Bind(&harvest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	harvest.ID = c.Param("id")

	if err := h.harvests.Update(c.Request().Context(), &harvest); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, harvest)
}

func (h *HarvestHandler) Delete(c echo.Context) error {
	if err := h.harvests.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "harvest deleted"})
}
