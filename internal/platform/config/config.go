package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Document extraction endpoint
	ExtractionURL     string
	ExtractionTimeout time.Duration

	CORSAllowedOrigins []string
	// IntakeRateLimit uses the limiter format, e.g. "10-M" for ten per minute.
	IntakeRateLimit string

	PosthogAPIKey   string
	PosthogEndpoint string

	SeedDemoData bool
}

const (
	defaultPort              = "8080"
	defaultExtractionURL     = "http://localhost:8000/extract"
	defaultExtractionTimeout = 60 * time.Second
	defaultIntakeRateLimit   = "10-M"
	defaultPosthogEndpoint   = "https://us.i.posthog.com"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EXTRACTION_URL", defaultExtractionURL)
	v.SetDefault("EXTRACTION_TIMEOUT", defaultExtractionTimeout.String())
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("INTAKE_RATE_LIMIT", defaultIntakeRateLimit)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)
	v.SetDefault("SEED_DEMO_DATA", true)

	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	cfg.ExtractionURL = v.GetString("EXTRACTION_URL")
	if cfg.ExtractionURL == "" {
		cfg.ExtractionURL = defaultExtractionURL
		log.Printf("Warning: EXTRACTION_URL not set. Defaulting to %s.\n", cfg.ExtractionURL)
	}

	timeoutStr := v.GetString("EXTRACTION_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultExtractionTimeout
		log.Printf("Warning: Invalid value for EXTRACTION_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ExtractionTimeout = timeout

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.IntakeRateLimit = v.GetString("INTAKE_RATE_LIMIT")
	if cfg.IntakeRateLimit == "" {
		cfg.IntakeRateLimit = defaultIntakeRateLimit
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics are disabled.")
	}

	cfg.SeedDemoData = v.GetBool("SEED_DEMO_DATA")

	return cfg
}

// splitList parses a comma separated list, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
