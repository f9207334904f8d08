package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected server config: %+v", cfg.HTTPServer)
	}
	if cfg.Assistant.Timezone != "UTC" || cfg.Assistant.EventDuration() != 30*time.Minute {
		t.Errorf("unexpected assistant config: %+v", cfg.Assistant)
	}
	if cfg.SQLite.Path == "" || cfg.RateLimit.PerMin != 60 {
		t.Errorf("unexpected defaults: %+v %+v", cfg.SQLite, cfg.RateLimit)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" || cfg.GoogleCalendar.TokenPath != "token.json" {
		t.Errorf("unexpected calendar defaults: %+v", cfg.GoogleCalendar)
	}
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
http_server:
  port: 9090
assistant:
  timezone: Asia/Ho_Chi_Minh
  event_duration_minutes: 45
gemini:
  api_key: ${SR_TEST_GEMINI_KEY}
  model: gemini-test
telegram:
  bot_token: plain-token
`)
	t.Setenv("SR_TEST_GEMINI_KEY", "from-env")

	cfg, err := load(viper.New(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Assistant.Timezone != "Asia/Ho_Chi_Minh" || cfg.Assistant.EventDuration() != 45*time.Minute {
		t.Errorf("unexpected assistant: %+v", cfg.Assistant)
	}
	if cfg.Gemini.APIKey != "from-env" || cfg.Gemini.Model != "gemini-test" {
		t.Errorf("unexpected gemini: %+v", cfg.Gemini)
	}
	if cfg.Telegram.BotToken != "plain-token" {
		t.Errorf("unexpected telegram: %+v", cfg.Telegram)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/creds.json")
	t.Setenv("HTTP_SERVER_PORT", "7070")

	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("gemini key = %q", cfg.Gemini.APIKey)
	}
	if cfg.SQLite.Path != "/tmp/override.db" {
		t.Errorf("sqlite path = %q", cfg.SQLite.Path)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/secrets/creds.json" {
		t.Errorf("credentials = %q", cfg.GoogleCalendar.CredentialsPath)
	}
	if cfg.HTTPServer.Port != 7070 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad timezone", "assistant:\n  timezone: Mars/Olympus\n", "assistant.timezone"},
		{"bad port", "http_server:\n  port: -1\n", "http_server.port"},
		{"bad duration", "assistant:\n  event_duration_minutes: 0\n", "event_duration_minutes"},
		{"negative rate", "rate_limit:\n  per_min: -5\n", "rate_limit.per_min"},
		{"malformed yaml", "http_server: [", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(viper.New(), writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
