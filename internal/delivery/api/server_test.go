package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itinerary/config"
	apimiddleware "itinerary/internal/delivery/api/middleware"
	"itinerary/internal/delivery/api/router"
	"itinerary/internal/delivery/api/router/handler"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/entity"
	mockUsecase "itinerary/internal/mocks/usecase"
	"itinerary/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type testServer struct {
	handler        http.Handler
	tripUC         *mockUsecase.MockTripUsecase
	optimizationUC *mockUsecase.MockOptimizationUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	return newTestServerWithLogger(t, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestServerWithLogger(t *testing.T, debug bool, logger *slog.Logger) *testServer {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.Env.Debug = debug
	cfg.HTTP.MaxRequestBodySize = "100KB"

	tripUC := mockUsecase.NewMockTripUsecase(t)
	optimizationUC := mockUsecase.NewMockOptimizationUsecase(t)

	authMiddleware, err := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Config: cfg})
	require.NoError(t, err)

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			TripHandler:         handler.NewTripHandler(handler.TripHandlerParams{TripUC: tripUC, Logger: logger}),
			OptimizationHandler: handler.NewOptimizationHandler(handler.OptimizationHandlerParams{OptimizationUC: optimizationUC, Logger: logger}),
			AuthMiddleware:      authMiddleware,
		},
	})
	require.NoError(t, err)

	h, ok := srv.(interface{ Handler() http.Handler })
	require.True(t, ok)

	return &testServer{handler: h.Handler(), tripUC: tripUC, optimizationUC: optimizationUC}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-health")
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-health", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-health"`)
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)
	dayID := uuid.New()

	s.optimizationUC.EXPECT().GetOptimization(mock.Anything, dayID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*usecase.OptimizationSnapshot, error) {
			assert.Equal(t, "caller-token", deliverycontext.GetBearerToken(ctx))
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.OptimizationSnapshot{DayID: id, State: entity.OptimizationStateIdle}, nil
		}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/days/"+dayID.String()+"/optimization", nil)
	req.Header.Set("Authorization", "Bearer caller-token")
	rec := s.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestServer_Errors(t *testing.T) {
	s := newTestServer(t)

	t.Run("unknown route", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v2/trips", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("infrastructure failure is hidden", func(t *testing.T) {
		s.tripUC.EXPECT().ListTrips(mock.Anything).Return(nil, errors.New("dial tcp 127.0.0.1:5432: connection refused")).Once()

		rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "5432")
	})
}

func TestServer_RequestLogCarriesDay(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServerWithLogger(t, true, slog.New(slog.NewJSONHandler(&buf, nil)))
	dayID := uuid.New()

	s.optimizationUC.EXPECT().ClearOptimization(mock.Anything, dayID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) error {
			deliverycontext.GetLoggerOrDefault(ctx, nil).Info("clearing")

			return nil
		}).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/days/"+dayID.String()+"/optimization", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-day")
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"params":{"dayId":"`+dayID.String()+`"}`)
		assert.Contains(t, line, `"request_id":"req-day"`)
	}
	assert.Contains(t, lines[1], `"route":"/api/v1/days/:dayId/optimization"`)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/trips/abc/status", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPatch)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Authorization")
	rec := s.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPatch)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "Authorization")
}
