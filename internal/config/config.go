package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Client    ClientConfig    `mapstructure:"client"`
	Session   SessionConfig   `mapstructure:"session"`
	Retry     RetryConfig     `mapstructure:"retry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

// APIConfig 时长一律以整数秒/毫秒配置，环境变量同样是裸数字
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`

	// 由 TimeoutSeconds 推导（非配置文件字段）
	Timeout time.Duration `mapstructure:"-"`
}

type ClientConfig struct {
	Mode string `mapstructure:"mode"` // debug / release
}

type SessionConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// RetryConfig 仅对网络类失败与 5xx 生效，count 为 0 时关闭
type RetryConfig struct {
	Count     int `mapstructure:"count"`
	WaitMs    int `mapstructure:"wait_ms"`
	MaxWaitMs int `mapstructure:"max_wait_ms"`

	// 由上面的毫秒数推导（非配置文件字段）
	WaitTime    time.Duration `mapstructure:"-"`
	MaxWaitTime time.Duration `mapstructure:"-"`
}

// RateLimitConfig 客户端侧限流，约束高频触发的重复拉取
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("INTERVIEW_PREP")
	viper.AutomaticEnv()

	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("api.timeout_seconds", 10)
	viper.SetDefault("client.mode", "release")
	viper.SetDefault("session.db_path", "session.db")
	viper.SetDefault("retry.count", 0)
	viper.SetDefault("retry.wait_ms", 100)
	viper.SetDefault("retry.max_wait_ms", 2000)
	viper.SetDefault("rate_limit.requests_per_second", 0)
	viper.SetDefault("rate_limit.burst", 1)

	// API
	viper.BindEnv("api.base_url", "API_BASE_URL")
	viper.BindEnv("api.timeout_seconds", "API_TIMEOUT_SECONDS")

	// Client
	viper.BindEnv("client.mode", "CLIENT_MODE")

	// Session
	viper.BindEnv("session.db_path", "SESSION_DB_PATH")

	// Retry
	viper.BindEnv("retry.count", "RETRY_COUNT")
	viper.BindEnv("retry.wait_ms", "RETRY_WAIT_MS")
	viper.BindEnv("retry.max_wait_ms", "RETRY_MAX_WAIT_MS")

	// RateLimit
	viper.BindEnv("rate_limit.requests_per_second", "RATE_LIMIT_RPS")
	viper.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.API.Timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	cfg.Retry.WaitTime = time.Duration(cfg.Retry.WaitMs) * time.Millisecond
	cfg.Retry.MaxWaitTime = time.Duration(cfg.Retry.MaxWaitMs) * time.Millisecond

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url must not be empty")
	}

	return &cfg, nil
}
