package service

import (
	"context"

	"itinerary/internal/domain/optimization"
)

// RoutingClient calls the remote route optimization service.
//
// Implementations return *optimization.ServiceFailure for HTTP error statuses
// and *optimization.TransportFailure when no response was received.
type RoutingClient interface {
	// Optimize sends one optimize request authorized with the bearer token.
	Optimize(ctx context.Context, token string, req *optimization.Request) (*optimization.Response, error)
}
