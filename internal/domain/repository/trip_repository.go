// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for trip persistence.
var (
	// ErrTripNotFound is returned when a trip is not found.
	ErrTripNotFound = errors.New("trip not found")
)

// TripRepository defines the interface for trip-related database operations.
type TripRepository interface {
	// ListTrips returns all trips ordered by start date, without days.
	ListTrips(ctx context.Context) ([]*entity.Trip, error)

	// FindTripByID retrieves a trip with its days and their stops.
	FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// UpdateTripStatus persists a new trip status.
	UpdateTripStatus(ctx context.Context, id uuid.UUID, status entity.TripStatus) error
}
