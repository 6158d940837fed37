package service

import (
	"context"

	"itinerary/internal/domain/optimization"
)

// OptimizationCache stores routing responses by request fingerprint.
type OptimizationCache interface {
	// Get returns the cached response, or nil on a miss.
	Get(ctx context.Context, fingerprint string) (*optimization.Response, error)

	// Set stores a response for the configured TTL.
	Set(ctx context.Context, fingerprint string, resp *optimization.Response) error
}
