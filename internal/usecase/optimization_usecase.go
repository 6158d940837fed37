package usecase

import (
	"context"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
)

// OptimizationSnapshot is the observable optimization state of one day
type OptimizationSnapshot struct {
	DayID   uuid.UUID                  `json:"day_id"`
	State   entity.OptimizationState   `json:"state"`
	Attempt uint64                     `json:"attempt"`
	Result  *entity.OptimizationResult `json:"result,omitempty"`
	Report  *entity.ErrorReport        `json:"error,omitempty"`
}

// OptimizationOutcome is what one optimize call produced. A stale outcome was
// superseded by a newer call or a clear and did not change the snapshot.
type OptimizationOutcome struct {
	OptimizationSnapshot
	Stale bool `json:"stale"`
}

// OptimizationUsecase defines the route optimization round-trip for trip days
type OptimizationUsecase interface {
	// OptimizeDay validates the day, calls the routing service and records the outcome.
	// Optimization failures are reported in the outcome; the error is reserved for
	// lookups and infrastructure faults.
	OptimizeDay(ctx context.Context, dayID uuid.UUID, options entity.OptimizationOptions) (*OptimizationOutcome, error)

	// GetOptimization returns the current state of a day's optimization
	GetOptimization(ctx context.Context, dayID uuid.UUID) (*OptimizationSnapshot, error)

	// ClearOptimization resets a day to idle and drops any pending result
	ClearOptimization(ctx context.Context, dayID uuid.UUID) error

	// AcceptOptimization commits the succeeded order to the day and returns the updated day
	AcceptOptimization(ctx context.Context, dayID uuid.UUID) (*entity.Day, error)

	// RouteQRCode renders a navigation link through the day's stops as PNG
	RouteQRCode(ctx context.Context, dayID uuid.UUID, profile entity.VehicleProfile) ([]byte, error)
}
