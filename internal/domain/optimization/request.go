package optimization

import (
	"itinerary/internal/domain/entity"
)

// BuildRequest converts a day into the optimize payload. Stops are ordered by
// seq with ties kept in collection order. The day must hold exactly one start
// and one end stop; coordinates are not checked here.
func BuildRequest(day *entity.Day, options entity.OptimizationOptions) (*Request, error) {
	ordered := day.OrderedStops()

	var (
		start, end   *entity.Stop
		starts, ends int
		via          = make([]Location, 0, len(ordered))
	)
	for i := range ordered {
		stop := &ordered[i]
		switch stop.Kind {
		case entity.StopKindStart:
			starts++
			start = stop
		case entity.StopKindEnd:
			ends++
			end = stop
		default:
			via = append(via, toWireLocation(stop))
		}
	}

	if starts != 1 || ends != 1 {
		return nil, &ValidationError{Reason: "missing start/end"}
	}

	options = options.WithDefaults()

	req := &Request{
		TripID:         day.TripID.String(),
		DayID:          day.ID.String(),
		Start:          toWireLocation(start),
		Stops:          via,
		End:            toWireLocation(end),
		Objective:      string(options.Objective),
		VehicleProfile: string(options.VehicleProfile),
		Units:          UnitsMetric,
		Prompt:         options.Prompt,
	}

	if len(options.Avoid) > 0 {
		req.Avoid = make([]string, len(options.Avoid))
		for i, a := range options.Avoid {
			req.Avoid[i] = string(a)
		}
	}

	return req, nil
}

// toWireLocation is the only place the domain Lon becomes the wire lng.
// Fixed via stops carry their seq so the service keeps them in place.
func toWireLocation(stop *entity.Stop) Location {
	loc := Location{
		ID:   stop.ID.String(),
		Name: stop.DisplayName(),
	}

	if pos := stop.Place.Position; pos != nil {
		loc.Lat = pos.Lat
		loc.Lng = pos.Lon
	}

	if stop.Kind == entity.StopKindVia && stop.Fixed {
		loc.FixedSeq = true
		loc.Seq = stop.Seq
	}

	return loc
}
