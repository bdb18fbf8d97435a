package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Session   SessionConfig
	Inventory InventoryConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// AssistantConfig contains credentials and options for the Gemini generative
// language endpoint backing the warehouse assistant.
type AssistantConfig struct {
	GeminiKey string
	BaseURL   string
	Model     string
}

// SessionConfig controls the lifecycle of in-memory browser sessions.
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepSchedule string
}

// InventoryConfig holds behavioral switches for the reconciliation engine.
type InventoryConfig struct {
	// KeepInvoiceLabel controls which label wins on invoice-triggered IN
	// movements: false keeps the legacy behavior of stamping the session
	// user's name over the invoice-derived label.
	KeepInvoiceLabel bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	idleTTL, err := time.ParseDuration(getenvWithDefault("SESSION_IDLE_TTL", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Assistant: AssistantConfig{
			GeminiKey: os.Getenv("GEMINI_API_KEY"),
			BaseURL:   getenvWithDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:     getenvWithDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Session: SessionConfig{
			IdleTTL:       idleTTL,
			SweepSchedule: getenvWithDefault("SESSION_SWEEP_SCHEDULE", "*/10 * * * *"),
		},
		Inventory: InventoryConfig{
			KeepInvoiceLabel: getenvWithDefault("KEEP_INVOICE_LABEL", "false") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
// The Gemini key is deliberately not required: without it the assistant
// degrades to a fixed fallback reply instead of refusing to boot.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Assistant.BaseURL == "" {
		return errors.New("GEMINI_BASE_URL must not be empty")
	}

	if c.Assistant.Model == "" {
		return errors.New("GEMINI_MODEL must not be empty")
	}

	if c.Session.IdleTTL <= 0 {
		return errors.New("SESSION_IDLE_TTL must be positive")
	}

	if c.Session.SweepSchedule == "" {
		return errors.New("SESSION_SWEEP_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
