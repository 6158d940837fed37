package optimization

import (
	"slices"

	"itinerary/internal/domain/entity"

	"github.com/google/uuid"
)

// BuildResult assembles the user-facing result of a successful call. A
// geometry that cannot be decoded is reported as a warning and dropped.
func BuildResult(dayID uuid.UUID, resp *Response, rec *Reconciliation, baseline entity.RouteMetrics) *entity.OptimizationResult {
	units := resp.Units
	if units == "" {
		units = UnitsMetric
	}

	result := &entity.OptimizationResult{
		DayID:     dayID,
		Version:   resp.Version,
		Objective: entity.Objective(resp.Objective),
		Units:     units,
		Legs:      rec.Legs,
		Stops:     rec.Stops,
		Summary: entity.RouteSummary{
			StopCount:        resp.Summary.StopCount,
			TotalDistanceKm:  resp.Summary.TotalDistanceKm,
			TotalDurationMin: resp.Summary.TotalDurationMin,
		},
		Diagnostics: entity.Diagnostics{
			Warnings:         append(nonNil(resp.Diagnostics.Warnings), rec.Warnings...),
			Assumptions:      nonNil(resp.Diagnostics.Assumptions),
			ComputationNotes: nonNil(resp.Diagnostics.ComputationNotes),
		},
		OriginalCount:  rec.OriginalCount,
		OptimizedCount: rec.OptimizedCount,
		SizeMismatch:   rec.SizeMismatch,
		Baseline:       baseline,
		Savings: CalculateSavings(
			baseline.DistanceKm, baseline.DurationMin,
			resp.Summary.TotalDistanceKm, resp.Summary.TotalDurationMin,
		),
	}

	geometry, err := DecodeGeometry(resp.Geometry)
	if err != nil {
		result.Diagnostics.Warnings = append(result.Diagnostics.Warnings, "Route geometry ignored: "+err.Error())
	} else {
		result.Geometry = geometry
	}

	return result
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return slices.Clone(s)
}
