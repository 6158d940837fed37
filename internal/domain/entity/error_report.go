package entity

// ErrorReport is the user-facing classification of a failed optimization.
type ErrorReport struct {
	ValidationErrors []string `json:"validation_errors"`
	RoutingErrors    []string `json:"routing_errors"`
	SystemErrors     []string `json:"system_errors"`
	Suggestions      []string `json:"suggestions"`
}

// NewErrorReport returns a report with non-nil slices so it always encodes as arrays.
func NewErrorReport() *ErrorReport {
	return &ErrorReport{
		ValidationErrors: []string{},
		RoutingErrors:    []string{},
		SystemErrors:     []string{},
		Suggestions:      []string{},
	}
}

func (r *ErrorReport) HasErrors() bool {
	return len(r.ValidationErrors) > 0 || len(r.RoutingErrors) > 0 || len(r.SystemErrors) > 0
}

// Retryable is true only for routing and system failures; validation
// failures need an input change first.
func (r *ErrorReport) Retryable() bool {
	return len(r.RoutingErrors) > 0 || len(r.SystemErrors) > 0
}
