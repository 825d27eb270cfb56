package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/drewburchfield/gridiron/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration

	CacheEnabled bool
	CacheTTL     time.Duration

	DocumentPath   string
	MaxUploadBytes int64
	LoaderWorkers  int
	TeamColors     map[string]string

	FeedURL                string
	FeedTimeout            time.Duration
	FeedMaxRetries         int
	FeedCircuitEnabled     bool
	FeedCircuitFailures    int
	FeedCircuitOpenTimeout time.Duration
	FeedCircuitHalfOpenMax int

	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	UptraceLogsEnabled     bool
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	feedTimeout, err := time.ParseDuration(getEnv("FEED_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_TIMEOUT: %w", err)
	}
	if feedTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_TIMEOUT must be > 0")
	}
	feedMaxRetries, err := getEnvAsInt("FEED_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_MAX_RETRIES: %w", err)
	}
	if feedMaxRetries < 0 {
		return Config{}, fmt.Errorf("FEED_MAX_RETRIES must be >= 0")
	}
	feedCircuitEnabled, err := strconv.ParseBool(getEnv("FEED_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_ENABLED: %w", err)
	}
	feedCircuitFailures, err := getEnvAsInt("FEED_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if feedCircuitFailures < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	feedCircuitOpenTimeout, err := time.ParseDuration(getEnv("FEED_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if feedCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	feedCircuitHalfOpenMax, err := getEnvAsInt("FEED_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FEED_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if feedCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("FEED_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	maxUploadBytes, err := getEnvAsInt("MAX_UPLOAD_BYTES", 4<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_UPLOAD_BYTES: %w", err)
	}
	if maxUploadBytes < 1 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be >= 1")
	}

	loaderWorkers, err := getEnvAsInt("LOADER_WORKERS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOADER_WORKERS: %w", err)
	}
	if loaderWorkers < 1 {
		return Config{}, fmt.Errorf("LOADER_WORKERS must be >= 1")
	}

	teamColors, err := parseColorMap(getEnv("TEAM_COLORS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_COLORS: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "gridiron-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		DocumentPath:   strings.TrimSpace(getEnv("DOCUMENT_PATH", "")),
		MaxUploadBytes: int64(maxUploadBytes),
		LoaderWorkers:  loaderWorkers,
		TeamColors:     teamColors,

		FeedURL:                strings.TrimSpace(getEnv("FEED_URL", "")),
		FeedTimeout:            feedTimeout,
		FeedMaxRetries:         feedMaxRetries,
		FeedCircuitEnabled:     feedCircuitEnabled,
		FeedCircuitFailures:    feedCircuitFailures,
		FeedCircuitOpenTimeout: feedCircuitOpenTimeout,
		FeedCircuitHalfOpenMax: feedCircuitHalfOpenMax,

		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		UptraceLogsEnabled:     uptraceLogsEnabled,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseColorMap parses "Team Name:#RRGGBB,Other Team:#RRGGBB" into a palette.
func parseColorMap(raw string) (map[string]string, error) {
	out := make(map[string]string)
	parts := strings.Split(raw, ",")
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		name, color, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("invalid map item %q, expected team_name:#hex", item)
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty team name in item %q", item)
		}
		color = strings.TrimSpace(color)
		if !strings.HasPrefix(color, "#") || (len(color) != 4 && len(color) != 7) {
			return nil, fmt.Errorf("invalid color in item %q: expected #RGB or #RRGGBB", item)
		}

		out[name] = color
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
