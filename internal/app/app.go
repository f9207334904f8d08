package app

import (
	"context"
	"database/sql"
	"fmt"

	"smart-routine/config"
	"smart-routine/internal/command"
	commandRepo "smart-routine/internal/command/repository/sqlite"
	commandUC "smart-routine/internal/command/usecase"
	"smart-routine/internal/mood"
	moodRepo "smart-routine/internal/mood/repository/sqlite"
	moodUC "smart-routine/internal/mood/usecase"
	"smart-routine/internal/task"
	taskRepo "smart-routine/internal/task/repository/sqlite"
	taskUC "smart-routine/internal/task/usecase"
	"smart-routine/pkg/datemath"
	"smart-routine/pkg/gcalendar"
	"smart-routine/pkg/gemini"
	"smart-routine/pkg/log"
	pkgSqlite "smart-routine/pkg/sqlite"
	"smart-routine/pkg/telegram"
)

// App is the wired application shared by the API server and the CLI.
type App struct {
	DB       *sql.DB
	DateMath *datemath.Parser

	Tasks    task.UseCase
	Moods    mood.UseCase
	Commands command.UseCase

	// Bot is nil when no Telegram token is configured.
	Bot *telegram.Bot
}

// New opens the database and builds every use case. Calendar, Gemini and
// Telegram are optional; a missing or broken integration is logged and skipped.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := pkgSqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	l.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	calendar := newCalendar(ctx, cfg.GoogleCalendar, l)
	analyzer := newAnalyzer(ctx, cfg.Gemini, l)

	tasks := taskUC.New(l, taskRepo.New(db, l), calendar, dateMath, taskUC.Config{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		EventDuration: cfg.Assistant.EventDuration(),
	})
	moods := moodUC.New(l, moodRepo.New(db, l), analyzer)
	commands := commandUC.New(l, commandRepo.New(db, l), tasks, moods, dateMath)

	a := &App{
		DB:       db,
		DateMath: dateMath,
		Tasks:    tasks,
		Moods:    moods,
		Commands: commands,
	}
	if cfg.Telegram.BotToken != "" {
		a.Bot = telegram.NewBot(cfg.Telegram.BotToken)
	} else {
		l.Warn(ctx, "Telegram skipped: telegram.bot_token is not set")
	}
	return a, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

// newCalendar returns nil rather than a typed nil when the calendar is unavailable.
func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l log.Logger) task.Calendar {
	if cfg.CredentialsPath == "" {
		l.Warn(ctx, "Google Calendar skipped: google_calendar.credentials_path is not set")
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		return nil
	}
	l.Info(ctx, "✅ Google Calendar initialized")
	return client
}

func newAnalyzer(ctx context.Context, cfg config.GeminiConfig, l log.Logger) mood.Analyzer {
	if cfg.APIKey == "" {
		l.Warn(ctx, "Mood analysis skipped: gemini.api_key is not set")
		return nil
	}

	client := gemini.NewClient(cfg.APIKey)
	client.SetModel(cfg.Model)
	if cfg.APIURL != "" {
		client.SetAPIURL(cfg.APIURL)
	}
	l.Infof(ctx, "✅ Gemini initialized (model %s)", client.Model())
	return client
}
