package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	EnvPrefix     = "CHATPAY_"
	ConfigFileEnv = "CHATPAY_CONFIG_FILE"
)

type Config struct {
	Backend BackendConfig `koanf:"backend"`
	Chat    ChatConfig    `koanf:"chat"`
	Payment PaymentConfig `koanf:"payment"`
	Logger  LoggerConfig  `koanf:"logger"`
}

type BackendConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type ChatConfig struct {
	Greeting string `koanf:"greeting"`
}

type PaymentConfig struct {
	AmountCents         int64         `koanf:"amount_cents" validate:"min=1"`
	Currency            string        `koanf:"currency" validate:"required,len=3"`
	ProcessorBaseURL    string        `koanf:"processor_base_url" validate:"required,url"`
	PublishableKey      string        `koanf:"publishable_key"`
	PublishableKeyParam string        `koanf:"publishable_key_param"`
	Timeout             time.Duration `koanf:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
	File   string `koanf:"file"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"backend.base_url":           "http://127.0.0.1:8000",
		"backend.timeout":            "30s",
		"payment.amount_cents":       3000,
		"payment.currency":           "usd",
		"payment.processor_base_url": "https://api.stripe.com",
		"payment.timeout":            "30s",
		"logger.level":               "info",
		"logger.format":              "text",
	}
}

// LoadConfig merges defaults, the optional YAML file at path and CHATPAY_*
// environment variables, in that order. An empty path falls back to
// CHATPAY_CONFIG_FILE.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
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
