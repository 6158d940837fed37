package usecase

import (
	"context"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
)

// TripUsecase defines read access to trips and days plus trip status changes
type TripUsecase interface {
	// ListTrips returns every trip without days
	ListTrips(ctx context.Context) ([]*entity.Trip, error)

	// GetTrip returns a trip with its days and stops
	GetTrip(ctx context.Context, tripID uuid.UUID) (*entity.Trip, error)

	// GetDay returns a day with its stops ordered by seq
	GetDay(ctx context.Context, dayID uuid.UUID) (*entity.Day, error)

	// UpdateTripStatus moves a trip to a new status if the transition is allowed
	UpdateTripStatus(ctx context.Context, tripID uuid.UUID, status entity.TripStatus) (*entity.Trip, error)
}
