package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/errors"

	"github.com/labstack/echo/v4"
)

// AccessLogMiddleware writes one line per request through the request-scoped
// logger. Outside debug mode only server failures are logged.
type AccessLogMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewAccessLogMiddleware creates a new access log middleware
func NewAccessLogMiddleware(logger *slog.Logger, config *config.Config) *AccessLogMiddleware {
	return &AccessLogMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle must be registered after RequestScopeMiddleware.
func (m *AccessLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *AccessLogMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := resolveStatus(c, err)
	level := levelForStatus(status)
	if !m.debug && level < slog.LevelError {
		return
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}

// resolveStatus predicts the status the error handler will write when the
// handler returned an error without committing a response.
func resolveStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
