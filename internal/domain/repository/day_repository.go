package repository

import (
	"context"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for day persistence.
var (
	// ErrDayNotFound is returned when a day is not found.
	ErrDayNotFound = errors.New("day not found")
	// ErrStopNotOnDay is returned when a stop update targets a stop of another day.
	ErrStopNotOnDay = errors.New("stop does not belong to day")
)

// DayRepository defines the interface for day and stop database operations.
type DayRepository interface {
	// FindDayByID retrieves a day with its stops and their places.
	FindDayByID(ctx context.Context, id uuid.UUID) (*entity.Day, error)

	// UpdateStopSequences rewrites the seq of the given stops of a day.
	UpdateStopSequences(ctx context.Context, dayID uuid.UUID, seqByStop map[uuid.UUID]int) error
}
