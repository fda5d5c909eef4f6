package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	HTTP    ServerConfig
	Log     LogConfig
	Gateway GatewayConfig
	Results ResultsConfig
	Poll    PollConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

type GatewayConfig struct {
	BaseURL      string
	MerchantCode string
	UserID       string
	HTTPTimeout  time.Duration
}

type ResultsConfig struct {
	TTL             time.Duration
	SweepInterval   time.Duration
	ReferenceLength int
}

type PollConfig struct {
	BaseURL     string
	Interval    time.Duration
	MaxAttempts int
	HTTPTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "billpay-service"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Gateway: GatewayConfig{
			BaseURL:      getEnv("GATEWAY_BASE_URL", ""),
			MerchantCode: getEnv("GATEWAY_MERCHANT_CODE", ""),
			UserID:       getEnv("GATEWAY_USER_ID", ""),
			HTTPTimeout:  getSecondsEnv("GATEWAY_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Results: ResultsConfig{
			TTL:             getMinutesEnv("RESULTS_TTL_MINUTES", 30*time.Minute),
			SweepInterval:   getMinutesEnv("RESULTS_SWEEP_INTERVAL_MINUTES", 5*time.Minute),
			ReferenceLength: getIntEnv("PAYMENT_REFERENCE_LENGTH", 16),
		},
		Poll: PollConfig{
			BaseURL:     getEnv("POLL_BASE_URL", "http://localhost:8080"),
			Interval:    getSecondsEnv("POLL_INTERVAL_SECONDS", 2*time.Second),
			MaxAttempts: getIntEnv("POLL_MAX_ATTEMPTS", 30),
			HTTPTimeout: getSecondsEnv("POLL_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getMinutesEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
