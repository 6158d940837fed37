package optimization

import (
	"fmt"

	"itinerary/internal/domain/entity"
)

// MinStops is the smallest day worth optimizing.
const MinStops = 3

// ValidateDay lists every reason the day cannot be optimized. Stops are
// numbered in seq order starting at 1.
func ValidateDay(day *entity.Day) []string {
	var problems []string

	if len(day.Stops) < MinStops {
		problems = append(problems, "At least 3 stops are required for route optimization.")
	}

	switch n := len(day.StopsOfKind(entity.StopKindStart)); {
	case n == 0:
		problems = append(problems, "A start location is required.")
	case n > 1:
		problems = append(problems, "Only one start location is allowed.")
	}

	switch n := len(day.StopsOfKind(entity.StopKindEnd)); {
	case n == 0:
		problems = append(problems, "An end location is required.")
	case n > 1:
		problems = append(problems, "Only one end location is allowed.")
	}

	for i, stop := range day.OrderedStops() {
		label := fmt.Sprintf("Stop %d (%s)", i+1, stop.DisplayName())

		pos := stop.Place.Position
		if pos == nil {
			problems = append(problems, label+" is missing coordinates.")

			continue
		}
		if !pos.ValidLatitude() {
			problems = append(problems, label+" has invalid latitude.")
		}
		if !pos.ValidLongitude() {
			problems = append(problems, label+" has invalid longitude.")
		}
	}

	return problems
}

// Validate checks the day and the options together.
func Validate(day *entity.Day, options entity.OptimizationOptions) []string {
	problems := ValidateDay(day)

	return append(problems, options.Problems()...)
}
