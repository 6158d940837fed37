package optimization

import (
	"encoding/json"
	"fmt"
	"testing"

	"itinerary/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "version": "1.2",
  "objective": "time",
  "units": "metric",
  "ordered": [%s],
  "summary": {"stop_count": 4, "total_distance_km": 300, "total_duration_min": 250},
  "geometry": {
    "format": "geojson",
    "route": {"type": "LineString", "coordinates": [[0, 0], [2, 0], [1, 0], [3, 0]]},
    "bounds": {"min_lat": -0.5, "min_lng": -0.5, "max_lat": 0.5, "max_lng": 3.5}
  },
  "diagnostics": {"warnings": ["ferry skipped"], "assumptions": [], "computation_notes": ["solved in 12ms"]}
}`

func TestDecodeGeometry_LineString(t *testing.T) {
	g := &Geometry{
		Format: "geojson",
		Route:  json.RawMessage(`{"type":"LineString","coordinates":[[2.35,48.85],[2.29,48.86]]}`),
	}

	got, err := DecodeGeometry(g)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, orb.LineString{{2.35, 48.85}, {2.29, 48.86}}, got.Path)
	assert.Equal(t, orb.Point{2.29, 48.85}, got.Bound.Min)
	assert.Equal(t, orb.Point{2.35, 48.86}, got.Bound.Max)
}

func TestDecodeGeometry_UsesProvidedBounds(t *testing.T) {
	g := &Geometry{
		Route:  json.RawMessage(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`),
		Bounds: &Bounds{MinLat: -1, MinLng: -2, MaxLat: 3, MaxLng: 4},
	}

	got, err := DecodeGeometry(g)
	require.NoError(t, err)

	assert.Equal(t, orb.Point{-2, -1}, got.Bound.Min)
	assert.Equal(t, orb.Point{4, 3}, got.Bound.Max)
}

func TestDecodeGeometry_Absent(t *testing.T) {
	got, err := DecodeGeometry(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeGeometry(&Geometry{Format: "geojson"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeGeometry_Unsupported(t *testing.T) {
	_, err := DecodeGeometry(&Geometry{Format: "polyline6", Route: json.RawMessage(`"abc"`)})
	require.ErrorIs(t, err, ErrUnsupportedGeometry)

	_, err = DecodeGeometry(&Geometry{Route: json.RawMessage(`{"type":"Point","coordinates":[1,2]}`)})
	require.ErrorIs(t, err, ErrUnsupportedGeometry)
}

// Scenario: start(0,0), A(0,1), B(0,2), end(0,3); the service answers start, B, A, end.
func TestBuildResult_EndToEndScenario(t *testing.T) {
	day := newTestDay(t)
	start, a, b, end := day.Stops[0], day.Stops[1], day.Stops[2], day.Stops[3]

	req, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)
	assert.Len(t, req.Stops, 2)

	orderedJSON, err := json.Marshal(orderedFrom(start, b, a, end))
	require.NoError(t, err)
	raw := []byte(fmt.Sprintf(sampleResponse, string(orderedJSON[1:len(orderedJSON)-1])))

	var resp Response
	require.NoError(t, json.Unmarshal(raw, &resp))

	rec, err := Reconcile(&resp, day.Stops)
	require.NoError(t, err)

	baseline := entity.RouteMetrics{DistanceKm: 280, DurationMin: 300}
	result := BuildResult(day.ID, &resp, rec, baseline)

	require.Len(t, result.Stops, 4)
	assert.Equal(t, "start", result.Stops[0].Place.Name)
	assert.Equal(t, "B", result.Stops[1].Place.Name)
	assert.Equal(t, "A", result.Stops[2].Place.Name)
	assert.Equal(t, "end", result.Stops[3].Place.Name)
	assert.Equal(t, 2, result.Stops[1].Seq)

	assert.Equal(t, "1.2", result.Version)
	assert.Equal(t, entity.ObjectiveTime, result.Objective)
	assert.Equal(t, 4, result.Summary.StopCount)
	assert.InDelta(t, 300, result.Summary.TotalDistanceKm, 1e-9)
	assert.Equal(t, []string{"ferry skipped"}, result.Diagnostics.Warnings)
	assert.Equal(t, []string{}, result.Diagnostics.Assumptions)
	assert.Equal(t, []string{"solved in 12ms"}, result.Diagnostics.ComputationNotes)
	require.NotNil(t, result.Geometry)
	assert.Len(t, result.Geometry.Path, 4)
	assert.False(t, result.SizeMismatch)

	assert.Zero(t, result.Savings.DistanceSavedKm)
	assert.InDelta(t, 50, result.Savings.TimeSavedMin, 1e-9)
	assert.InDelta(t, 16.6667, result.Savings.TimeSavedPercent, 1e-4)
}

func TestBuildResult_BadGeometryBecomesWarning(t *testing.T) {
	day := newTestDay(t)
	resp := &Response{
		Ordered:  orderedFrom(day.Stops...),
		Geometry: &Geometry{Format: "geojson", Route: json.RawMessage(`{"type":"Polygon","coordinates":[]}`)},
	}

	rec, err := Reconcile(resp, day.Stops)
	require.NoError(t, err)

	result := BuildResult(day.ID, resp, rec, entity.RouteMetrics{})

	assert.Nil(t, result.Geometry)
	require.Len(t, result.Diagnostics.Warnings, 1)
	assert.Contains(t, result.Diagnostics.Warnings[0], "Route geometry ignored")
	assert.Equal(t, UnitsMetric, result.Units)
}

func TestRouteGeometry_MarshalJSON(t *testing.T) {
	g := entity.RouteGeometry{
		Path:  orb.LineString{{2.35, 48.85}, {2.29, 48.86}},
		Bound: orb.Bound{Min: orb.Point{2.29, 48.85}, Max: orb.Point{2.35, 48.86}},
	}

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded struct {
		Route struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"route"`
		Bounds map[string]float64 `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "LineString", decoded.Route.Type)
	assert.Equal(t, [][]float64{{2.35, 48.85}, {2.29, 48.86}}, decoded.Route.Coordinates)
	assert.InDelta(t, 48.85, decoded.Bounds["min_lat"], 1e-9)
	assert.InDelta(t, 2.35, decoded.Bounds["max_lng"], 1e-9)
}
