package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"ENV", "LOG_LEVEL",
	"GEMINI_API_KEY", "GEMINI_MODEL",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
	"DEFAULT_PROVIDER",
	"CATALOG_PATH", "PROMPT_TEMPLATE_PATH", "PROMPT_PLACEHOLDER",
	"REQUEST_TIMEOUT", "REQUEST_MIN_INTERVAL",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_ALLOWED_CHAT_IDS",
}

// clearEnv test davomida konfiguratsiya o'zgaruvchilarini o'chirib turish
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "Gemini", cfg.DefaultProvider)
	assert.Equal(t, "data/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "data/prompt_template.txt", cfg.PromptTemplatePath)
	assert.Equal(t, "{keyword}", cfg.PromptPlaceholder)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 350*time.Millisecond, cfg.RequestMinInterval)
	assert.Empty(t, cfg.Telegram.AllowedChatIDs)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-secret")
	t.Setenv("OPENAI_MODEL", "o3")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("DEFAULT_PROVIDER", "openai")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("PROMPT_PLACEHOLDER", "[[KW]]")
	t.Setenv("TELEGRAM_ALLOWED_CHAT_IDS", "100,-200")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini-secret", cfg.Gemini.APIKey)
	assert.Equal(t, "o3", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "[[KW]]", cfg.PromptPlaceholder)
	assert.Equal(t, []int64{100, -200}, cfg.Telegram.AllowedChatIDs)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `env: prod
catalog_path: /srv/catalog.xlsx
request_timeout: 45s
openai:
  model: gpt-4
telegram:
  token: bot-token
  allowed_chat_ids: [7, 8]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/srv/catalog.xlsx", cfg.CatalogPath)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "bot-token", cfg.Telegram.Token)
	assert.Equal(t, []int64{7, 8}, cfg.Telegram.AllowedChatIDs)
	// environment fayldan ustun
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	// faylda yo'q kalitlar standart qiymatda
	assert.Equal(t, "{keyword}", cfg.PromptPlaceholder)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"blank placeholder", "PROMPT_PLACEHOLDER", "  "},
		{"zero timeout", "REQUEST_TIMEOUT", "0s"},
		{"negative interval", "REQUEST_MIN_INTERVAL", "-1s"},
		{"bad duration", "REQUEST_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestChatAllowed(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.ChatAllowed(1))

	cfg.Telegram.AllowedChatIDs = []int64{1, 2}
	assert.True(t, cfg.ChatAllowed(2))
	assert.False(t, cfg.ChatAllowed(3))
}
