package handler

import (
	"log/slog"
	"net/http"

	"itinerary/internal/delivery/api/response"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/entity"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OptimizationHandlerParams holds dependencies for OptimizationHandler, injected by Fx.
type OptimizationHandlerParams struct {
	fx.In

	OptimizationUC usecase.OptimizationUsecase
	Logger         *slog.Logger
}

// OptimizationHandler serves the route optimization round-trip of a day.
type OptimizationHandler struct {
	optimizationUC usecase.OptimizationUsecase
	logger         *slog.Logger
}

// NewOptimizationHandler is the constructor for OptimizationHandler
func NewOptimizationHandler(params OptimizationHandlerParams) *OptimizationHandler {
	return &OptimizationHandler{
		optimizationUC: params.OptimizationUC,
		logger:         params.Logger,
	}
}

// OptimizeDayRequest carries the optional tuning of an optimization.
// Field values are checked by the domain so users get its messages.
type OptimizeDayRequest struct {
	Objective      string   `json:"objective" validate:"max=32"`
	VehicleProfile string   `json:"vehicle_profile" validate:"max=32"`
	Avoid          []string `json:"avoid" validate:"max=8,dive,max=32"`
	Prompt         string   `json:"prompt"`
}

func (r OptimizeDayRequest) options() entity.OptimizationOptions {
	var avoid []entity.AvoidFeature
	for _, a := range r.Avoid {
		avoid = append(avoid, entity.AvoidFeature(a))
	}

	return entity.OptimizationOptions{
		Objective:      entity.Objective(r.Objective),
		VehicleProfile: entity.VehicleProfile(r.VehicleProfile),
		Avoid:          avoid,
		Prompt:         r.Prompt,
	}.WithDefaults()
}

// RouteQRCodeRequest selects the travel mode of the shared route
type RouteQRCodeRequest struct {
	Profile string `query:"profile" validate:"omitempty,oneof=car bike foot"`
}

// OptimizeDay handles an optimization request. A failed optimization is still
// a 200 carrying the error report; a superseded call is a 409.
func (h *OptimizationHandler) OptimizeDay(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	var req OptimizeDayRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid optimization input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	outcome, err := h.optimizationUC.OptimizeDay(ctx, dayID, req.options())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if outcome.Stale {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Optimization superseded",
			slog.String("day_id", dayID.String()),
			slog.Uint64("attempt", outcome.Attempt),
		)
		superseded := domainerrors.ErrOptimizationSuperseded

		return response.Conflict(c, superseded.ErrorCode(), superseded.Message(), outcome)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// GetOptimization handles reading a day's optimization state
func (h *OptimizationHandler) GetOptimization(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	snapshot, err := h.optimizationUC.GetOptimization(c.Request().Context(), dayID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// ClearOptimization handles resetting a day's optimization
func (h *OptimizationHandler) ClearOptimization(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	if err := h.optimizationUC.ClearOptimization(c.Request().Context(), dayID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Optimization cleared"})
}

// AcceptOptimization handles committing the optimized order to the day
func (h *OptimizationHandler) AcceptOptimization(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	day, err := h.optimizationUC.AcceptOptimization(c.Request().Context(), dayID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, day)
}

// RouteQRCode handles rendering the day's route as a QR code PNG
func (h *OptimizationHandler) RouteQRCode(c echo.Context) error {
	dayID, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid day ID")
	}

	var req RouteQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	png, err := h.optimizationUC.RouteQRCode(c.Request().Context(), dayID, entity.VehicleProfile(req.Profile))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
