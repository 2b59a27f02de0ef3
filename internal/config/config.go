// Package config loads the immutable server configuration.
//
// Priority (highest to lowest):
//  1. TGNOTIFY_* environment variables
//  2. Config file (JSON or YAML, optional)
//  3. Built-in defaults
//
// The classic Bot API variable names TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID are accepted as fallbacks when the telegram section
// is otherwise unset. The configuration is loaded once at startup and
// never reloaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Telegram TelegramConfig `koanf:"telegram"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type TelegramConfig struct {
	// Token is the bot credential. Required.
	Token string `koanf:"token" validate:"required"`
	// ChatID is the destination chat. Required.
	ChatID int64 `koanf:"chat_id" validate:"required"`
	// ThreadID optionally targets a forum topic inside the chat.
	ThreadID int `koanf:"thread_id"`
	// APIURL optionally points at a self-hosted Bot API server.
	APIURL string `koanf:"api_url"`
}

type LoggingConfig struct {
	Level   string      `koanf:"level"`
	Console bool        `koanf:"console"`
	File    LoggingFile `koanf:"file"`
}

type LoggingFile struct {
	// Path enables the JSON file sink when non-empty.
	Path string `koanf:"path"`
}

func defaults() map[string]any {
	return map[string]any{
		"logging.level":   "info",
		"logging.console": true,
	}
}

// envKeys maps recognized environment variables to config keys.
// Unlisted TGNOTIFY_* variables are ignored rather than guessed at.
var envKeys = map[string]string{
	"TGNOTIFY_TELEGRAM_TOKEN":     "telegram.token",
	"TGNOTIFY_TELEGRAM_CHAT_ID":   "telegram.chat_id",
	"TGNOTIFY_TELEGRAM_THREAD_ID": "telegram.thread_id",
	"TGNOTIFY_TELEGRAM_API_URL":   "telegram.api_url",
	"TGNOTIFY_LOG_LEVEL":          "logging.level",
	"TGNOTIFY_LOG_FILE":           "logging.file.path",
}

// Load reads the configuration from the optional file at path plus the
// environment, then validates it. A non-empty path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("TGNOTIFY_", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Classic Bot API names, used when nothing more specific is set.
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	}
	if cfg.Telegram.ChatID == 0 {
		if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer chat id: %w", err)
			}
			cfg.Telegram.ChatID = id
		}
	}

	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is required (telegram.token or TELEGRAM_BOT_TOKEN)")
	}
	if cfg.Telegram.ChatID == 0 {
		return nil, fmt.Errorf("telegram chat id is required (telegram.chat_id or TELEGRAM_CHAT_ID)")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		jb, err := yamlToJSON(data)
		if err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := k.Load(rawbytes.Provider(jb), json.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", path, err)
		}
	default:
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	return nil
}
