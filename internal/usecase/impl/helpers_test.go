package impl

import (
	"io"
	"log/slog"
	"testing"

	"itinerary/config"
	"itinerary/internal/domain/entity"
	"itinerary/internal/domain/optimization"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Routing: &config.RoutingConfig{
			BaselineSpeedKmh:     60,
			BaselineDetourFactor: 1,
		},
	}
}

func newTestStop(t *testing.T, name string, seq int, kind entity.StopKind, lat, lon float64) entity.Stop {
	t.Helper()

	place, err := entity.NewPlace(uuid.New(), name, "", lat, lon)
	require.NoError(t, err)

	stop, err := entity.NewStop(uuid.New(), place, seq, kind, false)
	require.NoError(t, err)

	return *stop
}

// newTestDay builds start(0,0), A(0,1), B(0,2), end(0,3).
func newTestDay(t *testing.T) *entity.Day {
	t.Helper()

	return &entity.Day{
		ID:     uuid.New(),
		TripID: uuid.New(),
		Seq:    1,
		Stops: []entity.Stop{
			newTestStop(t, "start", 1, entity.StopKindStart, 0, 0),
			newTestStop(t, "A", 2, entity.StopKindVia, 0, 1),
			newTestStop(t, "B", 3, entity.StopKindVia, 0, 2),
			newTestStop(t, "end", 4, entity.StopKindEnd, 0, 3),
		},
	}
}

// responseFor answers with the stops in the given order.
func responseFor(distanceKm, durationMin float64, stops ...entity.Stop) *optimization.Response {
	resp := &optimization.Response{
		Version:   "1.0",
		Objective: string(entity.ObjectiveTime),
		Units:     optimization.UnitsMetric,
		Summary: optimization.Summary{
			StopCount:        len(stops),
			TotalDistanceKm:  distanceKm,
			TotalDurationMin: durationMin,
		},
	}
	for i, s := range stops {
		resp.Ordered = append(resp.Ordered, optimization.OrderedLocation{
			ID:   s.ID.String(),
			Name: s.Place.Name,
			Lat:  s.Place.Position.Lat,
			Lng:  s.Place.Position.Lon,
			Seq:  i + 1,
		})
	}

	return resp
}
