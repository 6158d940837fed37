package middleware

import (
	"log/slog"

	deliverycontext "itinerary/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// scopedParams are the route params copied into the request logger under
// "params", so handler, session, routing client and SQL logs of one day join up.
var scopedParams = []string{"tripId", "dayId"} //nolint:gochecknoglobals

// RequestScopeMiddleware assigns the request ID and builds the request-scoped
// logger carrying the trip and day the request targets.
type RequestScopeMiddleware struct {
	logger *slog.Logger
}

// NewRequestScopeMiddleware creates a new request scope middleware
func NewRequestScopeMiddleware(logger *slog.Logger) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger: logger,
	}
}

// Process must run after routing (echo Use, not Pre) so route params are set.
func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		if params := routeParams(c); len(params) > 0 {
			reqLogger = reqLogger.With(slog.Group("params", params...))
		}

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func routeParams(c echo.Context) []any {
	var attrs []any
	for _, name := range scopedParams {
		if value := c.Param(name); value != "" {
			attrs = append(attrs, slog.String(name, value))
		}
	}

	return attrs
}
