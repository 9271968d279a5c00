package config

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv             = "RELAY_APP_ENV"
	EnvAppPort            = "RELAY_APP_PORT"
	EnvLogLevel           = "RELAY_LOG_LEVEL"
	EnvTeamsWebhookURL    = "RELAY_TEAMS_WEBHOOK_URL"
	EnvTeamsPostTimeout   = "RELAY_TEAMS_POST_TIMEOUT"
	EnvDashboardBaseURL   = "RELAY_DASHBOARD_BASE_URL"
	EnvRedisURL           = "RELAY_REDIS_URL"
	EnvIdempotencyTTL     = "RELAY_WEBHOOK_IDEMPOTENCY_TTL"
	EnvWebhookLogPayloads = "RELAY_WEBHOOK_LOG_PAYLOADS"
)
