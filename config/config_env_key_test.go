package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"routing": map[string]any{
			"baseUrl":          "",
			"baselineSpeedKmh": 30,
		},
		"redis": map[string]any{
			"resultTTL": "10m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ROUTING_BASEURL", want: "routing.baseUrl"},
		{envKey: "ROUTING_BASELINESPEEDKMH", want: "routing.baselineSpeedKmh"},
		{envKey: "REDIS_RESULTTTL", want: "redis.resultTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "/routing/days/route-breakdown", cfg.Routing.OptimizePath)
	assert.Equal(t, 30*time.Second, cfg.Routing.Timeout)
	assert.InDelta(t, 30.0, cfg.Routing.BaselineSpeedKmh, 1e-9)
	assert.InDelta(t, 1.3, cfg.Routing.BaselineDetourFactor, 1e-9)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5*time.Minute, cfg.Auth.ServiceTokenTTL)
	require.NotNil(t, cfg.Redis)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Redis.ResultTTL)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Routing: &RoutingConfig{OptimizePath: "/v2/optimize", Timeout: time.Second, BaselineSpeedKmh: 45, BaselineDetourFactor: 1.1},
		Redis:   &RedisConfig{Enabled: true, ResultTTL: time.Minute},
	}

	applyDefaults(cfg)

	assert.Equal(t, "/v2/optimize", cfg.Routing.OptimizePath)
	assert.Equal(t, time.Second, cfg.Routing.Timeout)
	assert.InDelta(t, 45.0, cfg.Routing.BaselineSpeedKmh, 1e-9)
	assert.InDelta(t, 1.1, cfg.Routing.BaselineDetourFactor, 1e-9)
	assert.Equal(t, time.Minute, cfg.Redis.ResultTTL)
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte("routing:\n  baseUrl: http://yaml.local\n  baselineSpeedKmh: 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "itinerary.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("ROUTING_BASEURL", "http://env.local")

	cfg, err := LoadWithEnv[Config]("itinerary", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Routing)
	assert.Equal(t, "http://env.local", cfg.Routing.BaseURL)
	assert.InDelta(t, 25.0, cfg.Routing.BaselineSpeedKmh, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}
