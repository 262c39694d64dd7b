package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// PlantingHandler serves the /api/tanaman_lahan crop-on-field routes.
type PlantingHandler struct {
	plantings ports.PlantingService
}

func NewPlantingHandler(plantings ports.PlantingService) *PlantingHandler {
	return &PlantingHandler{plantings: plantings}
}

func (h *PlantingHandler) List(c echo.Context) error {
	plantings, err := h.plantings.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plantings)
}

func (h *PlantingHandler) Get(c echo.Context) error {
	planting, err := h.plantings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planting)
}

func (h *PlantingHandler) Create(c echo.Context) error {
	var planting domain.Planting
	if err := c.Bind(&planting); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.plantings.Create(c.Request().Context(), &planting)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PlantingHandler) Update(c echo.Context) error {
	var planting domain.Planting
	if err := c.Bind(&planting); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	planting.ID = c.Param("id")

	if err := h.plantings.Update(c.Request().Context(), &planting); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planting)
}

func (h *PlantingHandler) Delete(c echo.Context) error {
	if err := h.plantings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "planting deleted"})
}
