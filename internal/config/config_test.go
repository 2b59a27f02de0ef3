package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TGNOTIFY_TELEGRAM_TOKEN", "TGNOTIFY_TELEGRAM_CHAT_ID",
		"TGNOTIFY_TELEGRAM_THREAD_ID", "TGNOTIFY_TELEGRAM_API_URL",
		"TGNOTIFY_LOG_LEVEL", "TGNOTIFY_LOG_FILE",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TGNOTIFY_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TGNOTIFY_TELEGRAM_CHAT_ID", "456")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, int64(456), cfg.Telegram.ChatID)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Logging.File.Path)
}

func TestLoadClassicEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100987")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, int64(-100987), cfg.Telegram.ChatID)
}

func TestLoadMissingToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("TGNOTIFY_TELEGRAM_CHAT_ID", "456")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestLoadMissingChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TGNOTIFY_TELEGRAM_TOKEN", "123:abc")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat id")
}

func TestLoadBadClassicChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
telegram:
  token: "file-token"
  chat_id: 99
  thread_id: 7
logging:
  level: debug
  console: false
  file:
    path: /tmp/tgnotify.log
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Telegram.Token)
	assert.Equal(t, int64(99), cfg.Telegram.ChatID)
	assert.Equal(t, 7, cfg.Telegram.ThreadID)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.Equal(t, "/tmp/tgnotify.log", cfg.Logging.File.Path)
}

func TestLoadJSONFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"telegram":{"token":"json-token","chat_id":12}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json-token", cfg.Telegram.Token)
	assert.Equal(t, int64(12), cfg.Telegram.ChatID)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"telegram":{"token":"file-token","chat_id":12}}`), 0o644))
	t.Setenv("TGNOTIFY_TELEGRAM_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, int64(12), cfg.Telegram.ChatID)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TGNOTIFY_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TGNOTIFY_TELEGRAM_CHAT_ID", "456")

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
