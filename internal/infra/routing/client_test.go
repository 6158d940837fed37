package routing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"itinerary/config"
	deliverycontext "itinerary/internal/delivery/context"
	"itinerary/internal/domain/optimization"
	"itinerary/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) service.RoutingClient {
	t.Helper()

	client, err := NewClient(ClientParams{
		Config: &config.Config{Routing: &config.RoutingConfig{
			BaseURL:      baseURL,
			OptimizePath: "/routing/days/route-breakdown",
			Timeout:      2 * time.Second,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func testRequest() *optimization.Request {
	return &optimization.Request{
		TripID:         "trip-1",
		DayID:          "day-1",
		Start:          optimization.Location{ID: "s", Lat: 48.85, Lng: 2.35, Name: "Hotel"},
		Stops:          []optimization.Location{{ID: "a", Lat: 48.86, Lng: 2.29, Name: "Tower"}},
		End:            optimization.Location{ID: "e", Lat: 48.85, Lng: 2.35, Name: "Hotel"},
		Objective:      "time",
		VehicleProfile: "car",
		Units:          optimization.UnitsMetric,
	}
}

func TestClient_Optimize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/routing/days/route-breakdown", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "day-1", body["day_id"])
		start := body["start"].(map[string]any)
		assert.InDelta(t, 2.35, start["lng"], 1e-9)
		assert.NotContains(t, body, "avoid")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"ordered": [
				{"id": "s", "lat": 48.85, "lng": 2.35, "seq": 1},
				{"id": "a", "lat": 48.86, "lng": 2.29, "seq": 2, "distance_from_prev_km": 4.2},
				{"id": "e", "lat": 48.85, "lng": 2.35, "seq": 3}
			],
			"summary": {"stop_count": 3, "total_distance_km": 8.4, "total_duration_min": 25},
			"diagnostics": {"warnings": ["traffic ignored"]}
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	resp, err := client.Optimize(ctx, "tok-123", testRequest())

	require.NoError(t, err)
	require.Len(t, resp.Ordered, 3)
	assert.Equal(t, "a", resp.Ordered[1].ID)
	require.NotNil(t, resp.Ordered[1].DistanceKm)
	assert.InDelta(t, 4.2, *resp.Ordered[1].DistanceKm, 1e-9)
	assert.Nil(t, resp.Ordered[0].DistanceKm)
	assert.InDelta(t, 8.4, resp.Summary.TotalDistanceKm, 1e-9)
	assert.Equal(t, []string{"traffic ignored"}, resp.Diagnostics.Warnings)
}

func TestClient_Optimize_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"errors":[{"code":"DISCONNECTED_GRAPH","message":"island"}]}`)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Optimize(context.Background(), "tok", testRequest())

	var failure *optimization.ServiceFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, http.StatusUnprocessableEntity, failure.StatusCode)
	require.NotNil(t, failure.Structured())
	assert.Equal(t, "DISCONNECTED_GRAPH", failure.Structured().Errors[0].Code)
}

func TestClient_Optimize_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newTestClient(t, baseURL).Optimize(context.Background(), "tok", testRequest())

	var failure *optimization.TransportFailure
	assert.True(t, errors.As(err, &failure))
}

func TestClient_Optimize_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ordered":[]}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, server.URL).Optimize(ctx, "tok", testRequest())

	var failure *optimization.TransportFailure
	require.True(t, errors.As(err, &failure))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Optimize_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>gateway</html>`)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Optimize(context.Background(), "tok", testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode optimization response")
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientParams{Config: &config.Config{Routing: &config.RoutingConfig{}}})
	assert.Error(t, err)

	_, err = NewClient(ClientParams{Config: &config.Config{}})
	assert.Error(t, err)
}
