package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	commandHTTP "smart-routine/internal/command/delivery/http"
	tgDelivery "smart-routine/internal/command/delivery/telegram"
	"smart-routine/internal/middleware"
	moodHTTP "smart-routine/internal/mood/delivery/http"
	taskHTTP "smart-routine/internal/task/delivery/http"
	"smart-routine/pkg/log"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	db          Pinger

	// Domains
	taskHandler     taskHTTP.Handler
	moodHandler     moodHTTP.Handler
	commandHandler  commandHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	DB              Pinger

	TaskHandler    taskHTTP.Handler
	MoodHandler    moodHTTP.Handler
	CommandHandler commandHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped without it.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		taskHandler:     cfg.TaskHandler,
		moodHandler:     cfg.MoodHandler,
		commandHandler:  cfg.CommandHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin})
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil || srv.moodHandler == nil || srv.commandHandler == nil {
		return errors.New("task, mood and command handlers are required")
	}
	return nil
}
