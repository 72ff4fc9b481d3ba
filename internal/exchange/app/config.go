package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Trace exporters accepted by TRACE_EXPORTER.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
	TraceExporterOTLP   = "otlp"
)

type Config struct {
	DatabaseFile        string        `env:"DATABASE_FILE"         envDefault:"giftexchange.db"` // Path to SQLite database file
	Env                 string        `env:"ENV"                   envDefault:"dev"`             // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`            // Log level (debug, info, warn, error)
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"`            // Log format (json, text)
	Port                int           `env:"PORT"                  envDefault:"8080"`            // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`             // Graceful shutdown timeout

	// AssignMaxAttempts bounds the construct-and-verify loop of one generation.
	AssignMaxAttempts int `env:"ASSIGN_MAX_ATTEMPTS" envDefault:"10000"`

	TraceExporter string `env:"TRACE_EXPORTER" envDefault:"none"` // none, stdout or otlp
	OTLPEndpoint  string `env:"OTLP_ENDPOINT"`                    // e.g. http://collector:4318, required for otlp
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.DatabaseFile == "" {
		return fmt.Errorf("DATABASE_FILE must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.AssignMaxAttempts <= 0 {
		return fmt.Errorf("ASSIGN_MAX_ATTEMPTS must be positive, got %d", c.AssignMaxAttempts)
	}

	switch c.TraceExporter {
	case TraceExporterNone, TraceExporterStdout:
	case TraceExporterOTLP:
		if c.OTLPEndpoint == "" {
			return fmt.Errorf("OTLP_ENDPOINT is required when TRACE_EXPORTER=otlp")
		}
	default:
		return fmt.Errorf("unknown TRACE_EXPORTER %q", c.TraceExporter)
	}
	return nil
}
