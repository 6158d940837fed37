// Package constants holds values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeRouteOrderAccepted labels published route order events.
const EventTypeRouteOrderAccepted = "route.order.accepted"

// Cache key prefixes.
const (
	CacheKeyOptimizationResult = "itinerary:optimization:"
)
