package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(config.ConfigFileEnv, "")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, int64(3000), cfg.Payment.AmountCents)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, "https://api.stripe.com", cfg.Payment.ProcessorBaseURL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpay.yaml")
	content := `
backend:
  base_url: http://backend.internal:9000
  timeout: 5s
chat:
  greeting: Welcome back
payment:
  amount_cents: 1999
  currency: eur
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CHATPAY_PAYMENT__AMOUNT_CENTS", "4500")
	t.Setenv("CHATPAY_PAYMENT__PUBLISHABLE_KEY", "pk_test_123")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "http://backend.internal:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "Welcome back", cfg.Chat.Greeting)
	assert.Equal(t, int64(4500), cfg.Payment.AmountCents)
	assert.Equal(t, "eur", cfg.Payment.Currency)
	assert.Equal(t, "pk_test_123", cfg.Payment.PublishableKey)
}

func TestLoadConfig_FileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: debug\n"), 0o600))
	t.Setenv(config.ConfigFileEnv, path)

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid backend url", "CHATPAY_BACKEND__BASE_URL", "not a url"},
		{"zero amount", "CHATPAY_PAYMENT__AMOUNT_CENTS", "0"},
		{"unknown log level", "CHATPAY_LOGGER__LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.ConfigFileEnv, "")
			t.Setenv(tt.key, tt.val)

			_, err := config.LoadConfig("")

			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	t.Run("writes json to the fallback writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeFn, err := config.LoggerConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
		require.NoError(t, err)
		defer closeFn()

		logger.Info("dropped")
		logger.Warn("kept", "key", "value")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
	})

	t.Run("appends to the configured file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chatpay.log")
		logger, closeFn, err := config.LoggerConfig{Level: "debug", File: path}.NewLogger(nil)
		require.NoError(t, err)

		logger.Debug("hello")
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=hello")
	})
}
