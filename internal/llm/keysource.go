package llm

import (
	"context"
	"fmt"
	"strings"
)

// KeySource resolves the API key at call time so a key saved in settings
// takes effect without a restart.
type KeySource interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKey is a fixed key, mostly for tests.
type StaticKey string

func (k StaticKey) APIKey(context.Context) (string, error) { return string(k), nil }

// SettingsReader is the part of the settings store a key lookup needs.
type SettingsReader interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
}

// SettingsKeySource reads the key from a setting and falls back to a fixed
// value (normally COURTSIDE_AI_API_KEY) when the setting is empty.
type SettingsKeySource struct {
	settings SettingsReader
	key      string
	fallback string
}

func NewSettingsKeySource(settings SettingsReader, settingKey, fallback string) *SettingsKeySource {
	return &SettingsKeySource{settings: settings, key: settingKey, fallback: strings.TrimSpace(fallback)}
}

func (s *SettingsKeySource) APIKey(ctx context.Context) (string, error) {
	var v string
	ok, err := s.settings.Get(ctx, s.key, &v)
	if err != nil {
		return "", fmt.Errorf("reading api key: %w", err)
	}
	if v = strings.TrimSpace(v); ok && v != "" {
		return v, nil
	}
	return s.fallback, nil
}
