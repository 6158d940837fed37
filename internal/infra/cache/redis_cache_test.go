package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"itinerary/config"
	"itinerary/internal/domain/optimization"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *optimizationCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewOptimizationCache(client, ttl).(*optimizationCache)
}

func sampleResponse() *optimization.Response {
	return &optimization.Response{
		Version: "1.0",
		Ordered: []optimization.OrderedLocation{
			{ID: "s", Lat: 1, Lng: 2, Seq: 1},
			{ID: "e", Lat: 3, Lng: 4, Seq: 2},
		},
		Summary: optimization.Summary{StopCount: 2, TotalDistanceKm: 5.5, TotalDurationMin: 12},
	}
}

func TestOptimizationCache_MissThenHit(t *testing.T) {
	_, cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, "abc", sampleResponse()))

	got, err = cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sampleResponse(), got)
}

func TestOptimizationCache_Expires(t *testing.T) {
	mr, cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "abc", sampleResponse()))
	assert.Equal(t, time.Minute, mr.TTL("itinerary:optimization:abc"))

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOptimizationCache_CorruptEntry(t *testing.T) {
	mr, cache := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("itinerary:optimization:abc", "not json"))

	_, err := cache.Get(context.Background(), "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode cached response")
}

func TestOptimizationCache_ServerDown(t *testing.T) {
	mr, cache := newTestCache(t, time.Minute)
	mr.Close()

	_, err := cache.Get(context.Background(), "abc")
	assert.Error(t, err)

	assert.Error(t, cache.Set(context.Background(), "abc", sampleResponse()))
}

func TestOptimizationCache_DefaultTTL(t *testing.T) {
	_, cache := newTestCache(t, 0)
	assert.Equal(t, defaultResultTTL, cache.ttl)
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled, err := New(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.Nil(t, disabled)

	_, err = New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{Enabled: true}},
		Logger: logger,
	})
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	enabled, err := New(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Enabled: true, Addr: mr.Addr(), ResultTTL: time.Minute}},
		Logger: logger,
	})
	require.NoError(t, err)
	require.NotNil(t, enabled)

	lc.RequireStart()
	require.NoError(t, enabled.Set(context.Background(), "k", sampleResponse()))
	lc.RequireStop()
}
