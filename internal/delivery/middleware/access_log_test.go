package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	domainerrors "itinerary/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	e := echo.New()
	newCtx := func() echo.Context {
		return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	}

	assert.Equal(t, http.StatusOK, resolveStatus(newCtx(), nil))
	assert.Equal(t, http.StatusConflict, resolveStatus(newCtx(), errors.WithStack(domainerrors.ErrOptimizationOutdated)))
	assert.Equal(t, http.StatusNotFound, resolveStatus(newCtx(), echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, resolveStatus(newCtx(), errors.New("boom")))

	committed := newCtx()
	_ = committed.NoContent(http.StatusAccepted)
	assert.Equal(t, http.StatusAccepted, resolveStatus(committed, errors.New("late")))
}

func TestAccessLog_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewAccessLogMiddleware(logger, &config.Config{})

	e := echo.New()
	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String())

	failed := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Error(t, mw.Handle(func(echo.Context) error { return errors.New("db down") })(failed))
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), "db down")
}

func TestRequestScope_RouteParams(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestScopeMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("tripId", "dayId", "other")
	c.SetParamValues("t-1", "d-1", "x")

	err := mw.Process(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"params":{"tripId":"t-1","dayId":"d-1"}`)
	assert.NotContains(t, buf.String(), `"other"`)
}
