package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Teams     TeamsConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
	Webhook   WebhookConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Teams.validate(); err != nil {
		return nil, err
	}
	cfg.Dashboard.BaseURL = strings.TrimRight(cfg.Dashboard.BaseURL, "/")
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RELAY_APP_ENV" default:"development"`
	Port         string `envconfig:"RELAY_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"RELAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RELAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type TeamsConfig struct {
	WebhookURL  string        `envconfig:"RELAY_TEAMS_WEBHOOK_URL" required:"true"`
	PostTimeout time.Duration `envconfig:"RELAY_TEAMS_POST_TIMEOUT" default:"10s"`
}

func (t TeamsConfig) validate() error {
	parsed, err := url.Parse(t.WebhookURL)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", EnvTeamsWebhookURL, err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("%s must be an http(s) url", EnvTeamsWebhookURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host", EnvTeamsWebhookURL)
	}
	return nil
}

type DashboardConfig struct {
	BaseURL string `envconfig:"RELAY_DASHBOARD_BASE_URL" default:"https://app.keygen.sh"`
}

// RedisConfig is optional: an empty URL disables the duplicate-delivery guard.
type RedisConfig struct {
	URL          string        `envconfig:"RELAY_REDIS_URL"`
	PoolSize     int           `envconfig:"RELAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RELAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RELAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RELAY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RELAY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type WebhookConfig struct {
	IdempotencyTTL time.Duration `envconfig:"RELAY_WEBHOOK_IDEMPOTENCY_TTL" default:"24h"`
	LogPayloads    bool          `envconfig:"RELAY_WEBHOOK_LOG_PAYLOADS" default:"false"`
}
