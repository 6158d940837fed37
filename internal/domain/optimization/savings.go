package optimization

import (
	"itinerary/internal/domain/entity"

	"github.com/paulmach/orb/geo"
)

// CalculateSavings compares the optimized route with the original one. Saved
// amounts never go below zero and percentages are zero when the original is zero.
func CalculateSavings(originalDistanceKm, originalDurationMin, optimizedDistanceKm, optimizedDurationMin float64) entity.Savings {
	distanceSaved := max(0, originalDistanceKm-optimizedDistanceKm)
	timeSaved := max(0, originalDurationMin-optimizedDurationMin)

	return entity.Savings{
		DistanceSavedKm:      distanceSaved,
		TimeSavedMin:         timeSaved,
		DistanceSavedPercent: percentOf(distanceSaved, originalDistanceKm),
		TimeSavedPercent:     percentOf(timeSaved, originalDurationMin),
	}
}

func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}

	return part / whole * 100
}

// EstimateBaseline approximates the route of the current stop order from
// great-circle legs scaled by detourFactor, driven at speedKmh. Stops without
// coordinates are skipped.
func EstimateBaseline(stops []entity.Stop, speedKmh, detourFactor float64) entity.RouteMetrics {
	day := entity.Day{Stops: stops}

	var (
		meters float64
		prev   *entity.Coordinate
	)
	for _, stop := range day.OrderedStops() {
		pos := stop.Place.Position
		if pos == nil {
			continue
		}
		if prev != nil {
			meters += geo.DistanceHaversine(prev.Point(), pos.Point())
		}
		prev = pos
	}

	if detourFactor < 1 {
		detourFactor = 1
	}
	km := meters / 1000 * detourFactor

	var minutes float64
	if speedKmh > 0 {
		minutes = km / speedKmh * 60
	}

	return entity.RouteMetrics{DistanceKm: km, DurationMin: minutes}
}
