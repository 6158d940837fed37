package optimization

import (
	"testing"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	tripID = uuid.MustParse("7b0d6a8e-3a53-4a7e-9a8c-0c4f3f6f0a01")
	dayID  = uuid.MustParse("7b0d6a8e-3a53-4a7e-9a8c-0c4f3f6f0a02")
)

func newTestStop(t *testing.T, name string, seq int, kind entity.StopKind, lat, lon float64) entity.Stop {
	t.Helper()

	place, err := entity.NewPlace(uuid.New(), name, "", lat, lon)
	require.NoError(t, err)

	stop, err := entity.NewStop(uuid.New(), place, seq, kind, false)
	require.NoError(t, err)

	return *stop
}

// newTestDay builds start(0,0), A(0,1), B(0,2), end(0,3) with seq 1..4.
func newTestDay(t *testing.T) *entity.Day {
	t.Helper()

	return &entity.Day{
		ID:     dayID,
		TripID: tripID,
		Seq:    1,
		Stops: []entity.Stop{
			newTestStop(t, "start", 1, entity.StopKindStart, 0, 0),
			newTestStop(t, "A", 2, entity.StopKindVia, 0, 1),
			newTestStop(t, "B", 3, entity.StopKindVia, 0, 2),
			newTestStop(t, "end", 4, entity.StopKindEnd, 0, 3),
		},
	}
}

func orderedFrom(stops ...entity.Stop) []OrderedLocation {
	out := make([]OrderedLocation, len(stops))
	for i, s := range stops {
		out[i] = OrderedLocation{ID: s.ID.String(), Name: s.Place.Name, Lat: s.Place.Position.Lat, Lng: s.Place.Position.Lon, Seq: i + 1}
	}

	return out
}
