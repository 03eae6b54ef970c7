package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ServerHostEnv            = "SERVER_HOST"
	ServerPortEnv            = "SERVER_PORT"
	ServerShutdownTimeoutEnv = "SERVER_SHUTDOWN_TIMEOUT"
	OTLPEndpointEnv          = "OTEL_EXPORTER_OTLP_ENDPOINT"
	OTLPServiceNameEnv       = "OTEL_SERVICE_NAME"
	OTLPEnvironmentEnv       = "OTEL_ENVIRONMENT"
	OTLPExportEnabledEnv     = "OTEL_EXPORT_ENABLED"
	LogLevelEnv              = "LOG_LEVEL"

	// EnvFilePath is the environment variable pointing at an optional .env file.
	EnvFilePath        = "ENV_PATH"
	DefaultEnvFilePath = ".env"
)

var ErrMissingConfig = errors.New("missing config data")

type Config struct {
	Server ServerConfig
	OTLP   OTLPConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type OTLPConfig struct {
	Endpoint      string
	ServiceName   string
	Environment   string
	ExportEnabled bool
	LogLevel      slog.Level
}

// LoadConfig loads configuration from environment variables, after applying
// the optional .env file named by ENV_PATH.
func LoadConfig() (*Config, error) {
	envPath := getEnv(EnvFilePath, DefaultEnvFilePath)
	if err := godotenv.Load(envPath); err != nil {
		// env may be provided another way
		slog.Debug("failed to load .env file", slog.String("path", envPath), slog.Any("err", err))
	}

	shutdownTimeout, err := time.ParseDuration(getEnv(ServerShutdownTimeoutEnv, "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ServerShutdownTimeoutEnv, err)
	}

	logLevel, err := parseLogLevel(getEnv(LogLevelEnv, "debug"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv(ServerHostEnv, "0.0.0.0"),
			Port:            getEnv(ServerPortEnv, "8080"),
			ShutdownTimeout: shutdownTimeout,
		},
		OTLP: OTLPConfig{
			Endpoint:      getEnv(OTLPEndpointEnv, "localhost:4317"),
			ServiceName:   getEnv(OTLPServiceNameEnv, "products-api"),
			Environment:   getEnv(OTLPEnvironmentEnv, "development"),
			ExportEnabled: getEnvAsBool(OTLPExportEnabledEnv, true),
			LogLevel:      logLevel,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := allNonEmpty(map[string]string{
		ServerHostEnv:      c.Server.Host,
		ServerPortEnv:      c.Server.Port,
		OTLPServiceNameEnv: c.OTLP.ServiceName,
	}); err != nil {
		return err
	}

	if c.OTLP.ExportEnabled {
		if err := allNonEmpty(map[string]string{OTLPEndpointEnv: c.OTLP.Endpoint}); err != nil {
			return err
		}
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", ServerPortEnv, err)
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port %d out of range for key %s", port, ServerPortEnv)
	}
	return nil
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func parseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", LogLevelEnv, value, err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return val
	}
	return defaultValue
}
