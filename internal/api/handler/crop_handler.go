package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// CropHandler serves the /api/tanaman crop catalogue routes.
type CropHandler struct {
	crops ports.CropService
}

func NewCropHandler(crops ports.CropService) *CropHandler {
	return &CropHandler{crops: crops}
}

func (h *CropHandler) List(c echo.Context) error {
	crops, err := h.crops.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crops)
}

func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.crops.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropHandler) Create(c echo.Context) error {
	var crop domain.Crop
	if err := c.Bind(&crop); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.crops.Create(c.Request().Context(), &crop)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CropHandler) Update(c echo.Context) error {
	var crop domain.Crop
	if err := c.Bind(&crop); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	crop.ID = c.Param("id")

	if err := h.crops.Update(c.Request().Context(), &crop); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropHandler) Delete(c echo.Context) error {
	if err := h.crops.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "crop deleted"})
}
