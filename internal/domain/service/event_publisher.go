package service

import (
	"context"
	"time"
)

// StopOrder is the committed position of one stop
type StopOrder struct {
	StopID string `json:"stop_id"`
	Seq    int    `json:"seq"`
}

// RouteOrderAcceptedEvent is emitted after an optimized order is committed
type RouteOrderAcceptedEvent struct {
	RequestID        string      `json:"request_id,omitempty"` // For distributed tracing
	TripID           string      `json:"trip_id"`
	DayID            string      `json:"day_id"`
	Stops            []StopOrder `json:"stops"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	TotalDurationMin float64     `json:"total_duration_min"`
	DistanceSavedKm  float64     `json:"distance_saved_km"`
	TimeSavedMin     float64     `json:"time_saved_min"`
	AcceptedAt       time.Time   `json:"accepted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRouteOrderAccepted publishes an accepted route order
	PublishRouteOrderAccepted(ctx context.Context, event *RouteOrderAcceptedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
