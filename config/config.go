package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	SQLite SQLiteConfig

	// SmartRoutine specifics
	Assistant      AssistantConfig
	Gemini         GeminiConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string // empty disables the rotating log file
}

type RateLimitConfig struct {
	PerMin int // 0 disables limiting
}

type SQLiteConfig struct {
	Path string
}

type AssistantConfig struct {
	Timezone             string
	EventDurationMinutes int
}

// EventDuration is the length of calendar events created for timed tasks.
func (c AssistantConfig) EventDuration() time.Duration {
	return time.Duration(c.EventDurationMinutes) * time.Minute
}

type GeminiConfig struct {
	APIKey string
	Model  string
	APIURL string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// DefaultConfigPaths are searched in order for config.yaml.
var DefaultConfigPaths = []string{"./config", ".", "/etc/smartroutine/"}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in DefaultConfigPaths. Every key can
// be overridden by its upper-cased env name with "." replaced by "_"
// (e.g. GEMINI_API_KEY for gemini.api_key).
func Load() (*Config, error) {
	return load(viper.New(), DefaultConfigPaths...)
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Storage
	cfg.SQLite.Path = v.GetString("sqlite.path")

	// Assistant
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Assistant.EventDurationMinutes = v.GetInt("assistant.event_duration_minutes")

	cfg.Gemini.APIKey = expandEnvVar(v, v.GetString("gemini.api_key"))
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)
	v.SetDefault("sqlite.path", "data/smartroutine.db")
	v.SetDefault("assistant.timezone", "UTC")
	v.SetDefault("assistant.event_duration_minutes", 30)
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.SQLite.Path == "" {
		return errors.New("sqlite.path is required")
	}
	if _, err := time.LoadLocation(c.Assistant.Timezone); err != nil {
		return fmt.Errorf("assistant.timezone: %w", err)
	}
	if c.Assistant.EventDurationMinutes <= 0 {
		return fmt.Errorf("assistant.event_duration_minutes must be positive, got %d", c.Assistant.EventDurationMinutes)
	}
	if c.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative, got %d", c.RateLimit.PerMin)
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
