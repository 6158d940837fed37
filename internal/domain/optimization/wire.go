// Package optimization turns a day into a route optimization request and
// interprets what the routing service sends back.
package optimization

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// UnitsMetric is the only unit system requested.
const UnitsMetric = "metric"

// Location is a stop as the routing service sees it. Lng carries the domain
// longitude under the service's key name.
type Location struct {
	ID       string  `json:"id,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name"`
	FixedSeq bool    `json:"fixed_seq,omitempty"`
	Seq      int     `json:"seq,omitempty"`
}

// Request is the optimize payload.
type Request struct {
	TripID         string     `json:"trip_id"`
	DayID          string     `json:"day_id"`
	Start          Location   `json:"start"`
	Stops          []Location `json:"stops"`
	End            Location   `json:"end"`
	Objective      string     `json:"objective"`
	VehicleProfile string     `json:"vehicle_profile"`
	Units          string     `json:"units"`
	Avoid          []string   `json:"avoid,omitempty"`
	Prompt         string     `json:"prompt,omitempty"`
}

// Fingerprint identifies requests with identical payloads.
func (r *Request) Fingerprint() (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "marshal optimization request")
	}
	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:]), nil
}

// OrderedLocation is one entry of the optimized visiting order.
type OrderedLocation struct {
	ID          string   `json:"id"`
	Type        string   `json:"type,omitempty"`
	Name        string   `json:"name,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Seq         int      `json:"seq,omitempty"`
	DistanceKm  *float64 `json:"distance_from_prev_km,omitempty"`
	DurationMin *float64 `json:"duration_from_prev_min,omitempty"`
}

type Summary struct {
	StopCount        int     `json:"stop_count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin float64 `json:"total_duration_min"`
}

type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Geometry is advisory. Route stays raw so a malformed shape never fails the
// whole response.
type Geometry struct {
	Format string          `json:"format,omitempty"`
	Route  json.RawMessage `json:"route,omitempty"`
	Bounds *Bounds         `json:"bounds,omitempty"`
}

type Diagnostics struct {
	Warnings         []string `json:"warnings,omitempty"`
	Assumptions      []string `json:"assumptions,omitempty"`
	ComputationNotes []string `json:"computation_notes,omitempty"`
}

// Response is the optimize success payload.
type Response struct {
	Version     string            `json:"version,omitempty"`
	Objective   string            `json:"objective,omitempty"`
	Units       string            `json:"units,omitempty"`
	Ordered     []OrderedLocation `json:"ordered"`
	Summary     Summary           `json:"summary"`
	Geometry    *Geometry         `json:"geometry,omitempty"`
	Diagnostics Diagnostics       `json:"diagnostics"`
}

// ErrorItem is one structured service error.
type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// ErrorBody is the structured error payload.
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}
