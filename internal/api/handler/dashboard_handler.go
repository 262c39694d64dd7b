package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// DashboardHandler serves the per-role landing endpoints and the
// manager summary.
type DashboardHandler struct {
	harvests  ports.HarvestService
	readings  ports.MonitoringService
	crops     ports.CropService
	plantings ports.PlantingService
}

func NewDashboardHandler(
	harvests ports.HarvestService,
	readings ports.MonitoringService,
	crops ports.CropService,
	plantings ports.PlantingService,
) *DashboardHandler {
	return &DashboardHandler{
		harvests:  harvests,
		readings:  readings,
		crops:     crops,
		plantings: plantings,
	}
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "welcome to the admin dashboard",
		"username": username,
	})
}

func (h *DashboardHandler) Manager(c echo.Context) error {
	username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "welcome to the manager dashboard",
		"username": username,
		"role":     role,
	})
}

func (h *DashboardHandler) Buyer(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "welcome to the buyer dashboard",
		"username": username,
	})
}

// Summary aggregates counts and the three most recent records of each
// manager-facing collection.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	harvests, err := h.harvests.List(ctx)
	if err != nil {
		return err
	}
	readings, err := h.readings.List(ctx)
	if err != nil {
		return err
	}
	crops, err := h.crops.List(ctx)
	if err != nil {
		return err
	}
	plantings, err := h.plantings.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_harvests":  len(harvests),
		"total_readings":  len(readings),
		"total_crops":     len(crops),
		"total_plantings": len(plantings),
		"recent_harvests": head(harvests, 3),
		"recent_readings": head(readings, 3),
		"recent_crops":    head(crops, 3),
	})
}

func head[T any](s []T, n int) []T {
	if len(s) < n {
		return s
	}
	return s[:n]
}
