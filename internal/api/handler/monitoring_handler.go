package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// ReadingEnqueuer decouples the handler from the dispatcher.
type ReadingEnqueuer interface {
	EnqueueBatch(readings []ports.ReadingInput)
}

// MonitoringHandler serves /api/monitoring: synchronous CRUD on
// readings plus the asynchronous batch ingestion endpoint.
type MonitoringHandler struct {
	readings ports.MonitoringService
	queue    ReadingEnqueuer
}

func NewMonitoringHandler(readings ports.MonitoringService, queue ReadingEnqueuer) *MonitoringHandler {
	return &MonitoringHandler{readings: readings, queue: queue}
}

func (h *MonitoringHandler) List(c echo.Context) error {
	readings, err := h.readings.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, readings)
}

func (h *MonitoringHandler) Get(c echo.Context) error {
	reading, err := h.readings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reading)
}

func (h *MonitoringHandler) Create(c echo.Context) error {
	var reading domain.Reading
	if err := c.Bind(&reading); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.readings.Create(c.Request().Context(), &reading)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *MonitoringHandler) Update(c echo.Context) error {
	var reading domain.Reading
	if err := c.Bind(&reading); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	reading.ID = c.Param("id")

	if err := h.readings.Update(c.Request().Context(), &reading); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reading)
}

func (h *MonitoringHandler) Delete(c echo.Context) error {
	if err := h.readings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reading deleted"})
}

type batchReading struct {
	FieldID      string    `json:"field_id" validate:"required"`
	TemperatureC float64   `json:"temperature_c"`
	Humidity     float64   `json:"humidity" validate:"gte=0"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type batchRequest struct {
	Readings []batchReading `json:"readings" validate:"required,min=1,dive"`
}

// Ingest accepts a batch of sensor readings and queues them for the
// dispatcher workers. The response is 202: readings are persisted
// asynchronously, ordered per field.
func (h *MonitoringHandler) Ingest(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inputs := make([]ports.ReadingInput, 0, len(req.Readings))
	now := time.Now().UTC()
	for _, r := range req.Readings {
		ts := r.RecordedAt
		if ts.IsZero() {
			ts = now
		}
		inputs = append(inputs, ports.ReadingInput{
			FieldID:      r.FieldID,
			TemperatureC: r.TemperatureC,
			Humidity:     r.Humidity,
			RecordedAt:   ts,
		})
	}
	h.queue.EnqueueBatch(inputs)

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"message":  "readings queued",
		"accepted": len(inputs),
	})
}
