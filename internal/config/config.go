package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "HORIZON_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logger   LoggerConfig   `koanf:"logger"`
	Appwrite AppwriteConfig `koanf:"appwrite"`
	Dwolla   DwollaConfig   `koanf:"dwolla"`
	Plaid    PlaidConfig    `koanf:"plaid"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// AppwriteConfig holds the identity backend settings. Key is the server
// (admin) API key used to create accounts and sessions.
type AppwriteConfig struct {
	Endpoint string        `koanf:"endpoint" validate:"required,url"`
	Project  string        `koanf:"project" validate:"required"`
	Key      string        `koanf:"key" validate:"required"`
	Timeout  time.Duration `koanf:"timeout" validate:"required"`
}

type DwollaConfig struct {
	Env     string        `koanf:"env" validate:"required,oneof=sandbox production"`
	Key     string        `koanf:"key" validate:"required"`
	Secret  string        `koanf:"secret" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"required"`
	// BaseURL overrides the environment URL. Only meant for tests.
	BaseURL string `koanf:"base_url"`
}

type PlaidConfig struct {
	ClientID   string        `koanf:"client_id" validate:"required"`
	Secret     string        `koanf:"secret" validate:"required"`
	BaseURL    string        `koanf:"base_url" validate:"required,url"`
	ClientName string        `koanf:"client_name" validate:"required"`
	Timeout    time.Duration `koanf:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":            "8080",
		"server.read_timeout":    "10s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "60s",
		"server.request_timeout": "25s",
		"logger.level":           "info",
		"logger.format":          "text",
		"appwrite.timeout":       "10s",
		"dwolla.timeout":         "15s",
		"plaid.base_url":         "https://sandbox.plaid.com",
		"plaid.client_name":      "Horizon",
		"plaid.timeout":          "15s",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// NewLogger builds the process logger from the configured level and format.
func (c LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.slogLevel()}

	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func (c LoggerConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
