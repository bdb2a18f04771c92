package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port   string
	AppEnv string

	BackendBaseURL   string
	BackendTimeout   time.Duration
	BackendLoginPath string

	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	RedisAddr        string
	KafkaBroker      string
	OrderEventsTopic string

	SessionCookie      string
	SessionTTL         time.Duration
	LoginURL           string
	CheckoutSessionTTL time.Duration

	CountPollInterval time.Duration
}

var ErrMissingBackendURL = errors.New("BACKEND_BASE_URL is required")

var defaults = map[string]any{
	"PORT":                 "3000",
	"APP_ENV":              "development",
	"BACKEND_BASE_URL":     "",
	"BACKEND_TIMEOUT":      "15s",
	"BACKEND_LOGIN_PATH":   "/api/auth/login",
	"BREAKER_MAX_FAILURES": 5,
	"BREAKER_OPEN_TIMEOUT": "30s",
	"REDIS_ADDR":           "localhost:6379",
	"KAFKA_BROKER":         "localhost:9092",
	"ORDER_EVENTS_TOPIC":   "order.events",
	"SESSION_COOKIE":       "sid",
	"SESSION_TTL":          "24h",
	"LOGIN_URL":            "/login",
	"CHECKOUT_SESSION_TTL": "30m",
	"COUNT_POLL_INTERVAL":  "30s",
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:   v.GetString("PORT"),
		AppEnv: v.GetString("APP_ENV"),

		BackendBaseURL:   strings.TrimSuffix(v.GetString("BACKEND_BASE_URL"), "/"),
		BackendTimeout:   v.GetDuration("BACKEND_TIMEOUT"),
		BackendLoginPath: v.GetString("BACKEND_LOGIN_PATH"),

		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),

		RedisAddr:        v.GetString("REDIS_ADDR"),
		KafkaBroker:      v.GetString("KAFKA_BROKER"),
		OrderEventsTopic: v.GetString("ORDER_EVENTS_TOPIC"),

		SessionCookie:      v.GetString("SESSION_COOKIE"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		LoginURL:           v.GetString("LOGIN_URL"),
		CheckoutSessionTTL: v.GetDuration("CHECKOUT_SESSION_TTL"),

		CountPollInterval: v.GetDuration("COUNT_POLL_INTERVAL"),
	}

	if cfg.BackendBaseURL == "" {
		return nil, ErrMissingBackendURL
	}

	return cfg, nil
}
