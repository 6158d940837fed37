package handler

import (
	"log/slog"
	"net/http"

	"itinerary/internal/delivery/api/response"
	"itinerary/internal/domain/entity"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler serves trips and days.
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// UpdateTripStatusRequest represents the request body for changing a trip's status
type UpdateTripStatusRequest struct {
	Status string `json:"status" validate:"required,max=32"`
}

// ListTrips handles listing every trip
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.tripUC.ListTrips(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trips)
}

// GetTrip handles retrieving a trip with its days
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trip)
}

// UpdateTripStatus handles moving a trip to a new status
func (h *TripHandler) UpdateTripStatus(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	var req UpdateTripStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	trip, err := h.tripUC.UpdateTripStatus(c.Request().Context(), tripID, entity.TripStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trip)
}

// GetDay handles retrieving a day with its ordered stops
func (h *TripHandler) GetDay(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	day, err := h.tripUC.GetDay(c.Request().Context(), dayID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, day)
}
