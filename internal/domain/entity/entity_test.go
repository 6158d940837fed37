package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStop_StartAndEndAreAlwaysFixed(t *testing.T) {
	place, err := NewPlace(uuid.New(), "Hotel", "", 25.03, 121.56)
	require.NoError(t, err)

	start, err := NewStop(uuid.New(), place, 1, StopKindStart, false)
	require.NoError(t, err)
	assert.True(t, start.Fixed)

	end, err := NewStop(uuid.New(), place, 5, StopKindEnd, false)
	require.NoError(t, err)
	assert.True(t, end.Fixed)

	via, err := NewStop(uuid.New(), place, 2, StopKindVia, false)
	require.NoError(t, err)
	assert.False(t, via.Fixed)
	assert.True(t, via.Reorderable())

	pinned, err := NewStop(uuid.New(), place, 3, StopKindVia, true)
	require.NoError(t, err)
	assert.False(t, pinned.Reorderable())
}

func TestNewStop_Invalid(t *testing.T) {
	place := Place{ID: uuid.New(), Name: "Nowhere"}

	_, err := NewStop(uuid.New(), place, 0, StopKindVia, false)
	require.ErrorIs(t, err, ErrInvalidStopSeq)

	_, err = NewStop(uuid.New(), place, 1, StopKind("detour"), false)
	require.ErrorIs(t, err, ErrInvalidStopKind)
}

func TestNewCoordinate_Range(t *testing.T) {
	_, err := NewCoordinate(90, 180)
	require.NoError(t, err)

	_, err = NewCoordinate(-90.0001, 0)
	require.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = NewCoordinate(0, 180.5)
	require.ErrorIs(t, err, ErrInvalidCoordinate)

	c, err := NewCoordinate(48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, 2.35, c.Point().Lon())
	assert.Equal(t, 48.85, c.Point().Lat())
}

func TestStop_DisplayName(t *testing.T) {
	assert.Equal(t, "Louvre", Stop{Place: Place{Name: "Louvre", Address: "Rue de Rivoli"}}.DisplayName())
	assert.Equal(t, "Rue de Rivoli", Stop{Place: Place{Address: "Rue de Rivoli"}}.DisplayName())
}

func TestDay_OrderedStopsIsStableCopy(t *testing.T) {
	a := Stop{ID: uuid.New(), Seq: 2}
	b := Stop{ID: uuid.New(), Seq: 1}
	c := Stop{ID: uuid.New(), Seq: 2}
	day := &Day{Stops: []Stop{a, b, c}}

	ordered := day.OrderedStops()

	assert.Equal(t, []uuid.UUID{b.ID, a.ID, c.ID}, []uuid.UUID{ordered[0].ID, ordered[1].ID, ordered[2].ID})
	assert.Equal(t, a.ID, day.Stops[0].ID)
}

func TestTripStatus_Transitions(t *testing.T) {
	assert.True(t, TripStatusDraft.CanTransitionTo(TripStatusActive))
	assert.True(t, TripStatusActive.CanTransitionTo(TripStatusCompleted))
	assert.True(t, TripStatusCompleted.CanTransitionTo(TripStatusArchived))
	assert.True(t, TripStatusArchived.CanTransitionTo(TripStatusDraft))
	assert.False(t, TripStatusCompleted.CanTransitionTo(TripStatusActive))
	assert.False(t, TripStatusDraft.CanTransitionTo(TripStatus("paused")))
}

func TestNormalizeTripStatus(t *testing.T) {
	assert.Equal(t, TripStatusActive, NormalizeTripStatus("active"))
	assert.Equal(t, TripStatusDraft, NormalizeTripStatus(""))
	assert.Equal(t, TripStatusDraft, NormalizeTripStatus("unknown"))
}

func TestOptimizationOptions_Defaults(t *testing.T) {
	opts := OptimizationOptions{Prompt: "  scenic  "}.WithDefaults()

	assert.Equal(t, ObjectiveTime, opts.Objective)
	assert.Equal(t, VehicleProfileCar, opts.VehicleProfile)
	assert.Empty(t, opts.Avoid)
	assert.Equal(t, "scenic", opts.Prompt)
	assert.Empty(t, opts.Problems())
	assert.Equal(t, DefaultOptimizationOptions(), OptimizationOptions{}.WithDefaults())
}

func TestOptimizationOptions_Problems(t *testing.T) {
	opts := OptimizationOptions{
		Objective:      ObjectiveDistance,
		VehicleProfile: VehicleProfile("boat"),
		Avoid:          []AvoidFeature{AvoidHighways, "stairs"},
		Prompt:         strings.Repeat("é", MaxPromptLength),
	}

	problems := opts.Problems()

	assert.Len(t, problems, 2)
	assert.Contains(t, problems[1], "stairs")
}

func TestErrorReport_DerivedFlags(t *testing.T) {
	report := NewErrorReport()
	assert.False(t, report.HasErrors())
	assert.False(t, report.Retryable())

	report.ValidationErrors = append(report.ValidationErrors, "bad input")
	assert.True(t, report.HasErrors())
	assert.False(t, report.Retryable())

	report.RoutingErrors = append(report.RoutingErrors, "unreachable")
	assert.True(t, report.Retryable())
}

func TestOptimizationResult_SeqByStop(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	result := &OptimizationResult{Stops: []Stop{{ID: a, Seq: 2}, {ID: b, Seq: 1}}}

	assert.Equal(t, map[uuid.UUID]int{a: 2, b: 1}, result.SeqByStop())
}
