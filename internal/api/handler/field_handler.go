package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// FieldHandler serves the /api/lahan plot-of-land routes.
type FieldHandler struct {
	fields ports.FieldService
}

func NewFieldHandler(fields ports.FieldService) *FieldHandler {
	return &FieldHandler{fields: fields}
}

func (h *FieldHandler) List(c echo.Context) error {
	fields, err := h.fields.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fields)
}

func (h *FieldHandler) Get(c echo.Context) error {
	field, err := h.fields.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, field)
}

func (h *FieldHandler) Create(c echo.Context) error {
	var field domain.Field
	if err := c.Bind(&field); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.fields.Create(c.Request().Context(), &field)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *FieldHandler) Update(c echo.Context) error {
	var field domain.Field
	if err := c.Bind(&field); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	field.ID = c.Param("id")

	if err := h.fields.Update(c.Request().Context(), &field); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, field)
}

func (h *FieldHandler) Delete(c echo.Context) error {
	if err := h.fields.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "field deleted"})
}
