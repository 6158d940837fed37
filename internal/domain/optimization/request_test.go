package optimization

import (
	"encoding/json"
	"testing"

	"itinerary/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_Envelope(t *testing.T) {
	day := newTestDay(t)

	req, err := BuildRequest(day, entity.OptimizationOptions{})
	require.NoError(t, err)

	assert.Equal(t, tripID.String(), req.TripID)
	assert.Equal(t, dayID.String(), req.DayID)
	assert.Equal(t, "start", req.Start.Name)
	assert.Equal(t, "end", req.End.Name)
	require.Len(t, req.Stops, 2)
	assert.Equal(t, "A", req.Stops[0].Name)
	assert.Equal(t, "B", req.Stops[1].Name)
	assert.Equal(t, "time", req.Objective)
	assert.Equal(t, "car", req.VehicleProfile)
	assert.Equal(t, UnitsMetric, req.Units)
	assert.Nil(t, req.Avoid)
	assert.Empty(t, req.Prompt)
}

func TestBuildRequest_ViaCountIsTotalMinusTwo(t *testing.T) {
	for n := 2; n <= 8; n++ {
		day := newTestDay(t)
		stops := []entity.Stop{newTestStop(t, "s", 1, entity.StopKindStart, 10, 20)}
		for i := 0; i < n-2; i++ {
			stops = append(stops, newTestStop(t, "v", i+2, entity.StopKindVia, 10, 20))
		}
		stops = append(stops, newTestStop(t, "e", n, entity.StopKindEnd, 10, 20))
		day.Stops = stops

		req, err := BuildRequest(day, entity.DefaultOptimizationOptions())
		require.NoError(t, err)
		assert.Len(t, req.Stops, n-2)
	}
}

func TestBuildRequest_LonBecomesLng(t *testing.T) {
	day := newTestDay(t)
	day.Stops[1].Place.Position = &entity.Coordinate{Lat: 48.8566, Lon: 2.3522}

	req, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)

	assert.Equal(t, 48.8566, req.Stops[0].Lat)
	assert.Equal(t, 2.3522, req.Stops[0].Lng)

	raw, err := json.Marshal(req.Stops[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"lng":2.3522`)
	assert.NotContains(t, string(raw), `"lon"`)
}

func TestBuildRequest_SortsBySeqStably(t *testing.T) {
	day := newTestDay(t)
	// storage order end, B, start, A with A and B sharing seq 2
	a := newTestStop(t, "A", 2, entity.StopKindVia, 0, 1)
	b := newTestStop(t, "B", 2, entity.StopKindVia, 0, 2)
	day.Stops = []entity.Stop{day.Stops[3], b, day.Stops[0], a}

	req, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)

	require.Len(t, req.Stops, 2)
	assert.Equal(t, "B", req.Stops[0].Name)
	assert.Equal(t, "A", req.Stops[1].Name)
}

func TestBuildRequest_OptionalFields(t *testing.T) {
	day := newTestDay(t)

	req, err := BuildRequest(day, entity.OptimizationOptions{
		Objective:      entity.ObjectiveDistance,
		VehicleProfile: entity.VehicleProfileBike,
		Avoid:          []entity.AvoidFeature{entity.AvoidTolls, entity.AvoidFerries},
		Prompt:         "  visit the museum before noon  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "distance", req.Objective)
	assert.Equal(t, "bike", req.VehicleProfile)
	assert.Equal(t, []string{"tolls", "ferries"}, req.Avoid)
	assert.Equal(t, "visit the museum before noon", req.Prompt)

	blank, err := BuildRequest(day, entity.OptimizationOptions{Prompt: "   ", Avoid: []entity.AvoidFeature{}})
	require.NoError(t, err)

	raw, err := json.Marshal(blank)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"avoid"`)
	assert.NotContains(t, string(raw), `"prompt"`)
	assert.Contains(t, string(raw), `"units":"metric"`)
}

func TestBuildRequest_FixedViaCarriesSeq(t *testing.T) {
	day := newTestDay(t)
	day.Stops[2].Fixed = true

	req, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)

	assert.False(t, req.Stops[0].FixedSeq)
	assert.True(t, req.Stops[1].FixedSeq)
	assert.Equal(t, 3, req.Stops[1].Seq)
}

func TestBuildRequest_MissingStartOrEnd(t *testing.T) {
	day := newTestDay(t)
	day.Stops = day.Stops[:3]

	req, err := BuildRequest(day, entity.DefaultOptimizationOptions())

	assert.Nil(t, req)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "start/end")
}

func TestBuildRequest_DoesNotMutateDay(t *testing.T) {
	day := newTestDay(t)
	day.Stops[0], day.Stops[3] = day.Stops[3], day.Stops[0]
	before := append([]entity.Stop(nil), day.Stops...)

	_, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)

	assert.Equal(t, before, day.Stops)
}

func TestRequestFingerprint(t *testing.T) {
	day := newTestDay(t)

	first, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)
	second, err := BuildRequest(day, entity.DefaultOptimizationOptions())
	require.NoError(t, err)
	other, err := BuildRequest(day, entity.OptimizationOptions{Objective: entity.ObjectiveDistance})
	require.NoError(t, err)

	fp1, err := first.Fingerprint()
	require.NoError(t, err)
	fp2, err := second.Fingerprint()
	require.NoError(t, err)
	fp3, err := other.Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.NotEqual(t, fp1, fp3)
	assert.Len(t, fp1, 64)
}
