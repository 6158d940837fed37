package optimization

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrAuthenticationRequired is returned when no bearer token is available at call time.
var ErrAuthenticationRequired = errors.New("authentication required")

// ValidationError is raised by the request builder when the day cannot be
// turned into a request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid day for optimization: " + e.Reason
}

// ReconciliationError means the service answered with something that does not
// match the stops that were sent.
type ReconciliationError struct {
	StopID string
	Reason string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.StopID)
}

// ValidationFailure carries local validation messages; no request was sent.
type ValidationFailure struct {
	Messages []string
}

func (e *ValidationFailure) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// ServiceFailure is an HTTP error status from the routing service.
type ServiceFailure struct {
	StatusCode int
	Body       []byte
}

func (e *ServiceFailure) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("routing service responded %d", e.StatusCode)
	}

	return fmt.Sprintf("routing service responded %d: %s", e.StatusCode, body)
}

// Structured decodes an {errors:[{code,message}]} body. It returns nil when the
// body is not structured or lists no errors.
func (e *ServiceFailure) Structured() *ErrorBody {
	if len(e.Body) == 0 {
		return nil
	}

	var body ErrorBody
	if err := json.Unmarshal(e.Body, &body); err != nil || len(body.Errors) == 0 {
		return nil
	}

	return &body
}

// TransportFailure means no HTTP response was received.
type TransportFailure struct {
	Cause error
}

func (e *TransportFailure) Error() string {
	return "routing service unreachable: " + e.Cause.Error()
}

func (e *TransportFailure) Unwrap() error {
	return e.Cause
}
