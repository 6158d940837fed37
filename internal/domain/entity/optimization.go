package entity

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Objective is what the optimizer minimizes
type Objective string

const (
	ObjectiveTime     Objective = "time"
	ObjectiveDistance Objective = "distance"
)

// VehicleProfile selects the road network used by the optimizer
type VehicleProfile string

const (
	VehicleProfileCar  VehicleProfile = "car"
	VehicleProfileBike VehicleProfile = "bike"
	VehicleProfileFoot VehicleProfile = "foot"
)

// AvoidFeature is a road feature the optimizer should avoid
type AvoidFeature string

const (
	AvoidTolls    AvoidFeature = "tolls"
	AvoidFerries  AvoidFeature = "ferries"
	AvoidHighways AvoidFeature = "highways"
)

// MaxPromptLength bounds the free-text hint forwarded to the optimizer, in characters.
const MaxPromptLength = 500

// OptimizationOptions tune one optimization request.
type OptimizationOptions struct {
	Objective      Objective      `json:"objective"`
	VehicleProfile VehicleProfile `json:"vehicle_profile"`
	Avoid          []AvoidFeature `json:"avoid,omitempty"`
	Prompt         string         `json:"prompt,omitempty"`
}

// DefaultOptimizationOptions returns time/car with nothing avoided.
func DefaultOptimizationOptions() OptimizationOptions {
	return OptimizationOptions{
		Objective:      ObjectiveTime,
		VehicleProfile: VehicleProfileCar,
	}
}

// WithDefaults fills empty fields and trims the prompt.
func (o OptimizationOptions) WithDefaults() OptimizationOptions {
	if o.Objective == "" {
		o.Objective = ObjectiveTime
	}
	if o.VehicleProfile == "" {
		o.VehicleProfile = VehicleProfileCar
	}
	o.Prompt = strings.TrimSpace(o.Prompt)

	return o
}

// Problems lists every invalid field; empty means valid.
func (o OptimizationOptions) Problems() []string {
	var problems []string

	switch o.Objective {
	case ObjectiveTime, ObjectiveDistance:
	default:
		problems = append(problems, "Objective must be \"time\" or \"distance\".")
	}

	switch o.VehicleProfile {
	case VehicleProfileCar, VehicleProfileBike, VehicleProfileFoot:
	default:
		problems = append(problems, "Vehicle profile must be \"car\", \"bike\" or \"foot\".")
	}

	for _, a := range o.Avoid {
		switch a {
		case AvoidTolls, AvoidFerries, AvoidHighways:
		default:
			problems = append(problems, "Unsupported avoid option \""+string(a)+"\".")
		}
	}

	if utf8.RuneCountInString(o.Prompt) > MaxPromptLength {
		problems = append(problems, "Prompt must be at most 500 characters.")
	}

	return problems
}

// OptimizationState is the orchestrator state of one day
type OptimizationState string

const (
	OptimizationStateIdle       OptimizationState = "idle"
	OptimizationStateValidating OptimizationState = "validating"
	OptimizationStateRequesting OptimizationState = "requesting"
	OptimizationStateSucceeded  OptimizationState = "succeeded"
	OptimizationStateFailed     OptimizationState = "failed"
)

// Busy reports whether an attempt is in flight.
func (s OptimizationState) Busy() bool {
	return s == OptimizationStateValidating || s == OptimizationStateRequesting
}

// RouteLeg is one stop of the optimized order.
type RouteLeg struct {
	StopID           uuid.UUID `json:"stop_id"`
	Name             string    `json:"name"`
	Kind             StopKind  `json:"kind"`
	Position         int       `json:"position"`
	OriginalPosition int       `json:"original_position"`
	DistanceKm       *float64  `json:"distance_from_prev_km,omitempty"`
	DurationMin      *float64  `json:"duration_from_prev_min,omitempty"`
}

// Moved reports whether the stop changed position.
func (l RouteLeg) Moved() bool {
	return l.Position != l.OriginalPosition
}

// RouteSummary holds the round-trip totals reported by the optimizer.
type RouteSummary struct {
	StopCount        int     `json:"stop_count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin float64 `json:"total_duration_min"`
}

// RouteGeometry is the advisory drawn route.
type RouteGeometry struct {
	Path  orb.LineString
	Bound orb.Bound
}

func (g RouteGeometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Route  *geojson.Geometry  `json:"route"`
		Bounds map[string]float64 `json:"bounds"`
	}{
		Route: geojson.NewGeometry(g.Path),
		Bounds: map[string]float64{
			"min_lat": g.Bound.Min.Lat(),
			"min_lng": g.Bound.Min.Lon(),
			"max_lat": g.Bound.Max.Lat(),
			"max_lng": g.Bound.Max.Lon(),
		},
	})
}

// Diagnostics are informational notes; they never block acceptance.
type Diagnostics struct {
	Warnings         []string `json:"warnings"`
	Assumptions      []string `json:"assumptions"`
	ComputationNotes []string `json:"computation_notes"`
}

// RouteMetrics is a distance/duration pair.
type RouteMetrics struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// Savings compares the optimized route with the current order.
type Savings struct {
	DistanceSavedKm      float64 `json:"distance_saved_km"`
	TimeSavedMin         float64 `json:"time_saved_min"`
	DistanceSavedPercent float64 `json:"distance_saved_percent"`
	TimeSavedPercent     float64 `json:"time_saved_percent"`
}

// OptimizationResult is the transient outcome of one successful call.
type OptimizationResult struct {
	DayID          uuid.UUID      `json:"day_id"`
	Version        string         `json:"version,omitempty"`
	Objective      Objective      `json:"objective"`
	Units          string         `json:"units"`
	Legs           []RouteLeg     `json:"legs"`
	Stops          []Stop         `json:"stops"`
	Summary        RouteSummary   `json:"summary"`
	Geometry       *RouteGeometry `json:"geometry,omitempty"`
	Diagnostics    Diagnostics    `json:"diagnostics"`
	OriginalCount  int            `json:"original_count"`
	OptimizedCount int            `json:"optimized_count"`
	SizeMismatch   bool           `json:"size_mismatch"`
	Baseline       RouteMetrics   `json:"baseline"`
	Savings        Savings        `json:"savings"`
}

// SeqByStop maps each reordered stop to its new seq.
func (r *OptimizationResult) SeqByStop() map[uuid.UUID]int {
	seqs := make(map[uuid.UUID]int, len(r.Stops))
	for _, s := range r.Stops {
		seqs[s.ID] = s.Seq
	}

	return seqs
}
