package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip
type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusArchived  TripStatus = "archived"
)

func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusDraft, TripStatusActive, TripStatusCompleted, TripStatusArchived:
		return true
	default:
		return false
	}
}

// NormalizeTripStatus maps unknown or empty values to draft.
func NormalizeTripStatus(raw string) TripStatus {
	status := TripStatus(raw)
	if !status.IsValid() {
		return TripStatusDraft
	}

	return status
}

// CanTransitionTo reports whether the trip may move from s to next.
// A completed trip cannot be reactivated.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	if !next.IsValid() {
		return false
	}

	return !(s == TripStatusCompleted && next == TripStatusActive)
}

// Trip groups the days of an itinerary.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Destination string     `json:"destination,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      TripStatus `json:"status"`
	Days        []Day      `json:"days,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
