package optimization

import (
	"net/http"

	"itinerary/internal/domain/entity"

	"github.com/pkg/errors"
)

// Service error codes with a dedicated mapping.
const (
	CodeMultipleStart         = "MULTIPLE_START"
	CodeMissingEnd            = "MISSING_END"
	CodeFixedConflict         = "FIXED_CONFLICT"
	CodeDisconnectedGraph     = "DISCONNECTED_GRAPH"
	CodeInsufficientLocations = "INSUFFICIENT_LOCATIONS"
)

const (
	suggestFixAndRetry    = "Please fix the validation errors and try again."
	suggestRetryOrSupport = "Please try again or contact support if the issue persists."
)

type bucket int

const (
	bucketValidation bucket = iota
	bucketRouting
	bucketSystem
)

type codeMapping struct {
	bucket     bucket
	message    string
	suggestion string
}

var codeMappings = map[string]codeMapping{
	CodeMultipleStart: {
		bucket:     bucketValidation,
		message:    "Multiple start locations found. Only one start location is allowed.",
		suggestion: `Check that only one stop is marked as "start" type.`,
	},
	CodeMissingEnd: {
		bucket:     bucketValidation,
		message:    "No end location provided.",
		suggestion: `Ensure at least one stop is marked as "end" type.`,
	},
	CodeFixedConflict: {
		bucket:     bucketValidation,
		message:    "Conflicting fixed sequences detected.",
		suggestion: "Review fixed stop sequences for conflicts.",
	},
	CodeDisconnectedGraph: {
		bucket:     bucketRouting,
		message:    "Some locations cannot be reached by road.",
		suggestion: "Check that all locations are accessible by the selected vehicle type.",
	},
	CodeInsufficientLocations: {
		bucket:     bucketValidation,
		message:    "At least 3 locations are required for optimization.",
		suggestion: "Add more stops to enable route optimization.",
	},
}

// Classify turns any optimization failure into an ErrorReport. It never
// returns a report without at least one error entry.
func Classify(err error) *entity.ErrorReport {
	report := entity.NewErrorReport()

	var (
		validation *ValidationFailure
		service    *ServiceFailure
		transport  *TransportFailure
	)

	switch {
	case err == nil:
		report.SystemErrors = append(report.SystemErrors, "An unexpected error occurred during optimization.")
		report.Suggestions = append(report.Suggestions, suggestRetryOrSupport)

	case errors.As(err, &validation):
		if len(validation.Messages) == 0 {
			report.ValidationErrors = append(report.ValidationErrors, "Invalid optimization request.")
		} else {
			report.ValidationErrors = append(report.ValidationErrors, validation.Messages...)
		}
		report.Suggestions = append(report.Suggestions, suggestFixAndRetry)

	case errors.As(err, &service):
		classifyServiceFailure(report, service)

	case errors.As(err, &transport):
		report.SystemErrors = append(report.SystemErrors, "Unable to connect to optimization service.")
		report.Suggestions = append(report.Suggestions, "Check your internet connection and try again.")

	default:
		msg := err.Error()
		if msg == "" {
			msg = "An unexpected error occurred during optimization."
		}
		report.SystemErrors = append(report.SystemErrors, msg)
		report.Suggestions = append(report.Suggestions, suggestRetryOrSupport)
	}

	return report
}

// classifyServiceFailure prefers a structured body over the status code.
func classifyServiceFailure(report *entity.ErrorReport, failure *ServiceFailure) {
	if body := failure.Structured(); body != nil {
		unknown := false
		for _, item := range body.Errors {
			mapping, ok := codeMappings[item.Code]
			if !ok {
				msg := item.Message
				if msg == "" {
					msg = "Unknown optimization error"
				}
				report.SystemErrors = append(report.SystemErrors, msg)
				unknown = true

				continue
			}

			switch mapping.bucket {
			case bucketValidation:
				report.ValidationErrors = append(report.ValidationErrors, mapping.message)
			case bucketRouting:
				report.RoutingErrors = append(report.RoutingErrors, mapping.message)
			default:
				report.SystemErrors = append(report.SystemErrors, mapping.message)
			}
			report.Suggestions = append(report.Suggestions, mapping.suggestion)
		}
		if unknown {
			report.Suggestions = append(report.Suggestions, suggestRetryOrSupport)
		}

		return
	}

	switch {
	case failure.StatusCode == http.StatusUnprocessableEntity:
		report.RoutingErrors = append(report.RoutingErrors, "Unable to calculate routes between some locations.")
		report.Suggestions = append(report.Suggestions, "Verify that all locations are valid and accessible.")
	case failure.StatusCode == http.StatusBadRequest:
		report.ValidationErrors = append(report.ValidationErrors, "Invalid optimization request format.")
		report.Suggestions = append(report.Suggestions, suggestRetryOrSupport)
	case failure.StatusCode >= http.StatusInternalServerError:
		report.SystemErrors = append(report.SystemErrors, "Optimization service is temporarily unavailable.")
		report.Suggestions = append(report.Suggestions, "Please try again in a few moments.")
	default:
		report.SystemErrors = append(report.SystemErrors, failure.Error())
		report.Suggestions = append(report.Suggestions, suggestRetryOrSupport)
	}
}
