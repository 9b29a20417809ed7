// Package app reads the process configuration and wires repositories,
// services and outer surfaces into a runnable CLI.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/llm"
)

// Config is everything read from the environment at startup.
type Config struct {
	DBPath string
	// SchedulePath points at a YAML override table that replaces the
	// built-in season when seeding. Empty means built-in.
	SchedulePath string
	Location     *time.Location
	Addr         string

	TelegramToken  string
	TelegramChatID int64
	RemindCron     string

	LogLevel    slog.Level
	LogUseCases bool

	LLM llm.LLMConfig
}

// TelegramEnabled reports whether the daily briefing can be sent.
func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// LoadConfig reads COURTSIDE_* variables. Unset values fall back to
// defaults; malformed values are errors.
func LoadConfig() (Config, error) {
	cfg := Config{
		SchedulePath:  os.Getenv("COURTSIDE_SCHEDULE"),
		Addr:          getEnv("COURTSIDE_ADDR", ":8080"),
		TelegramToken: strings.TrimSpace(os.Getenv("COURTSIDE_TELEGRAM_TOKEN")),
		RemindCron:    os.Getenv("COURTSIDE_REMIND_CRON"),
		LogLevel:      slog.LevelInfo,
		LLM:           llm.LoadConfig(),
	}

	cfg.DBPath = os.Getenv("COURTSIDE_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".courtside", "courtside.db")
	}

	cfg.Location = time.Local
	if tz := os.Getenv("COURTSIDE_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("COURTSIDE_TZ: %w", err)
		}
		cfg.Location = loc
	}

	if v := os.Getenv("COURTSIDE_TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("COURTSIDE_TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if v := os.Getenv("COURTSIDE_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return cfg, fmt.Errorf("COURTSIDE_LOG_LEVEL: %w", err)
		}
	}
	if v := os.Getenv("COURTSIDE_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
