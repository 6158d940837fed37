// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "itinerary/internal/delivery/context"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.NewSuccessResponse(data, deliverycontext.GetRequestID(c)))
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// no details for 5xx or authentication/authorization errors
	hidden := statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden

	return c.JSON(statusCode, domainerrors.NewErrorResponse(errorCode, message, details, hidden, deliverycontext.GetRequestID(c)))
}

// PNG writes an image/png body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Conflict returns a 409 error with details
func Conflict(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusConflict, errorCode, message, details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Errors that are not AppErrors are passed on to echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}

// AppError renders appErr with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := domainerrors.InfoFrom(appErr)

	return Error(c, appErr.HTTPCode(), info.Code, info.Message, info.Details)
}
