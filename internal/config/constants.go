package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	envPlayerImageURL = "PLAYER_DETAIL_IMAGE_URL"
	envTeamImageURL   = "TEAM_DETAIL_IMAGE_URL"
	envCacheEnabled   = "DETAIL_CACHE_ENABLED"
	envCacheTTL       = "DETAIL_CACHE_TTL"

	defaultPort        = "4000"
	defaultProvider    = ProviderBalldontlie
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-viewer"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"

	defaultPlayerImageURL = "https://t.ly/85IG3"
	defaultTeamImageURL   = "https://t.ly/vxpnv"
	defaultCacheEnabled   = true
	defaultCacheTTL       = 5 * Duration(time.Minute)
)

// Provider names accepted by PROVIDER.
const (
	ProviderBalldontlie = "balldontlie"
	ProviderFixture     = "fixture"
)
