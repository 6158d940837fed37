package entity

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Day is one day of a trip with its ordered stops.
type Day struct {
	ID     uuid.UUID  `json:"id"`
	TripID uuid.UUID  `json:"trip_id"`
	Seq    int        `json:"seq"`
	Date   *time.Time `json:"date,omitempty"`
	Stops  []Stop     `json:"stops"`
}

// OrderedStops returns a copy of the stops sorted by Seq. Equal Seq values keep
// their collection order.
func (d *Day) OrderedStops() []Stop {
	ordered := slices.Clone(d.Stops)
	slices.SortStableFunc(ordered, func(a, b Stop) int {
		return cmp.Compare(a.Seq, b.Seq)
	})

	return ordered
}

// StopsOfKind returns the stops of the given kind in collection order.
func (d *Day) StopsOfKind(kind StopKind) []Stop {
	var out []Stop
	for _, s := range d.Stops {
		if s.Kind == kind {
			out = append(out, s)
		}
	}

	return out
}

// StopIDs returns the set of stop ids on the day.
func (d *Day) StopIDs() map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(d.Stops))
	for _, s := range d.Stops {
		ids[s.ID] = struct{}{}
	}

	return ids
}
