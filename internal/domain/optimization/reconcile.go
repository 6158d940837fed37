package optimization

import (
	"fmt"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
)

// Reconciliation is the optimized order mapped back onto the day's stops.
type Reconciliation struct {
	// Stops are copies of the original stops in optimized order with seq 1..N.
	Stops          []entity.Stop
	Legs           []entity.RouteLeg
	OriginalCount  int
	OptimizedCount int
	SizeMismatch   bool
	Warnings       []string
}

// Reconcile maps resp.Ordered onto originalStops by id. Every returned id must
// belong to originalStops exactly once. originalStops is not modified.
func Reconcile(resp *Response, originalStops []entity.Stop) (*Reconciliation, error) {
	day := entity.Day{Stops: originalStops}
	ordered := day.OrderedStops()

	indexByID := make(map[string]int, len(ordered))
	for i, stop := range ordered {
		indexByID[stop.ID.String()] = i
	}

	rec := &Reconciliation{
		Stops:          make([]entity.Stop, 0, len(resp.Ordered)),
		Legs:           make([]entity.RouteLeg, 0, len(resp.Ordered)),
		OriginalCount:  len(originalStops),
		OptimizedCount: len(resp.Ordered),
	}

	seen := make(map[int]struct{}, len(resp.Ordered))
	for i, loc := range resp.Ordered {
		idx, ok := indexByID[canonicalID(loc.ID)]
		if !ok {
			return nil, &ReconciliationError{StopID: loc.ID, Reason: "unknown stop id returned by service"}
		}
		if _, dup := seen[idx]; dup {
			return nil, &ReconciliationError{StopID: loc.ID, Reason: "duplicate stop id returned by service"}
		}
		seen[idx] = struct{}{}

		stop := ordered[idx]
		stop.Seq = i + 1
		rec.Stops = append(rec.Stops, stop)

		rec.Legs = append(rec.Legs, entity.RouteLeg{
			StopID:           stop.ID,
			Name:             stop.DisplayName(),
			Kind:             stop.Kind,
			Position:         i + 1,
			OriginalPosition: idx + 1,
			DistanceKm:       loc.DistanceKm,
			DurationMin:      loc.DurationMin,
		})

		if stop.Kind == entity.StopKindVia && stop.Fixed && idx != i {
			rec.Warnings = append(rec.Warnings,
				fmt.Sprintf("Fixed stop %q moved from position %d to %d.", stop.DisplayName(), idx+1, i+1))
		}
	}

	if rec.OptimizedCount != rec.OriginalCount {
		rec.SizeMismatch = true
		rec.Warnings = append(rec.Warnings,
			fmt.Sprintf("Optimized route has %d stops but the day has %d.", rec.OptimizedCount, rec.OriginalCount))
	}

	return rec, nil
}

// canonicalID lets the service echo ids in any UUID spelling.
func canonicalID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}

	return raw
}
