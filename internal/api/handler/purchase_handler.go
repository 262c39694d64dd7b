package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// PurchaseHandler serves purchase orders: buyers create and read them
// under /api/pembeli, managers administer them under
// /api/manager/pembelian.
type PurchaseHandler struct {
	purchases ports.PurchaseService
}

func NewPurchaseHandler(purchases ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) List(c echo.Context) error {
	purchases, err := h.purchases.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

func (h *PurchaseHandler) Get(c echo.Context) error {
	purchase, err := h.purchases.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}

// Create places a buyer's order. The buyer id comes from the payload,
// matching the original API contract the frontend depends on.
func (h *PurchaseHandler) Create(c echo.Context) error {
	var purchase domain.Purchase
	if err := c.Bind(&purchase); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.purchases.Create(c.Request().Context(), &purchase)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PurchaseHandler) Update(c echo.Context) error {
	var purchase domain.Purchase
	if err := c.Bind(&purchase); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	purchase.ID = c.Param("id")

	if err := h.purchases.Update(c.Request().Context(), &purchase); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) Delete(c echo.Context) error {
	if err := h.purchases.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "purchase deleted"})
}
