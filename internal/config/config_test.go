package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load 不带配置文件加载，只吃默认值与环境变量
func load(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := load(t)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "release", cfg.Client.Mode)
	assert.Equal(t, "session.db", cfg.Session.DBPath)
	assert.Equal(t, 0, cfg.Retry.Count)
	assert.Equal(t, 100*time.Millisecond, cfg.Retry.WaitTime)
	assert.Equal(t, 2*time.Second, cfg.Retry.MaxWaitTime)
	assert.Equal(t, 0.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
}

func TestLoadConfigTimeoutFromEnv(t *testing.T) {
	// 环境变量给裸数字（秒），不带单位
	t.Setenv("API_TIMEOUT_SECONDS", "5")

	cfg := load(t)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestLoadConfigRetryAndRateLimitFromEnv(t *testing.T) {
	t.Setenv("RETRY_COUNT", "2")
	t.Setenv("RETRY_WAIT_MS", "50")
	t.Setenv("RETRY_MAX_WAIT_MS", "500")
	t.Setenv("RATE_LIMIT_RPS", "20")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := load(t)
	assert.Equal(t, 2, cfg.Retry.Count)
	assert.Equal(t, 50*time.Millisecond, cfg.Retry.WaitTime)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.MaxWaitTime)
	assert.Equal(t, 20.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoadConfigBaseURLFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.example.com:9090")

	cfg := load(t)
	assert.Equal(t, "http://api.example.com:9090", cfg.API.BaseURL)
}
