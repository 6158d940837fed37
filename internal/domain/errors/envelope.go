package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "DAY_NOT_FOUND", "OPTIMIZATION_OUTDATED"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // stale outcome, offending stop ids, validation text
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope of every 2xx JSON body.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every non-2xx JSON body.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewSuccessResponse wraps data for requestID.
func NewSuccessResponse(data any, requestID string) SuccessResponse {
	return SuccessResponse{Data: data, Meta: &MetaInfo{RequestID: requestID}}
}

// NewErrorResponse builds the error envelope. Details are dropped when hidden
// is set.
func NewErrorResponse(code, message string, details any, hidden bool, requestID string) ErrorResponse {
	if hidden {
		details = nil
	}

	return ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}

// InfoFrom converts an AppError into its wire form; empty details are omitted.
func InfoFrom(appErr AppError) *ErrorInfo {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return &ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message(), Details: details}
}
