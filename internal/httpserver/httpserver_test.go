package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/middleware"
	"smart-routine/pkg/log"
)

type stubHandler struct{ name string }

func (s stubHandler) reply(c *gin.Context) { c.String(http.StatusOK, s.name) }

func (s stubHandler) Create(c *gin.Context)         { s.reply(c) }
func (s stubHandler) List(c *gin.Context)           { s.reply(c) }
func (s stubHandler) MarkDone(c *gin.Context)       { s.reply(c) }
func (s stubHandler) Delete(c *gin.Context)         { s.reply(c) }
func (s stubHandler) UpcomingEvents(c *gin.Context) { s.reply(c) }
func (s stubHandler) Analyze(c *gin.Context)        { s.reply(c) }
func (s stubHandler) Suggest(c *gin.Context)        { s.reply(c) }
func (s stubHandler) Process(c *gin.Context)        { s.reply(c) }
func (s stubHandler) History(c *gin.Context)        { s.reply(c) }
func (s stubHandler) HandleWebhook(c *gin.Context)  { s.reply(c) }

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func testConfig() Config {
	return Config{
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		RateLimitPerMin: 600,
		TaskHandler:     stubHandler{"task"},
		MoodHandler:     stubHandler{"mood"},
		CommandHandler:  stubHandler{"command"},
	}
}

func serve(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Port = 0 }},
		{"missing mode", func(c *Config) { c.Mode = "" }},
		{"missing task handler", func(c *Config) { c.TaskHandler = nil }},
		{"missing command handler", func(c *Config) { c.CommandHandler = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(log.NewNop(), cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}

	if _, err := New(nil, testConfig()); err == nil {
		t.Errorf("expected error for nil logger")
	}
}

func TestRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.TelegramHandler = stubHandler{"telegram"}
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/v1/tasks", "task"},
		{http.MethodPost, "/api/v1/tasks", "task"},
		{http.MethodPatch, "/api/v1/tasks/abc/done", "task"},
		{http.MethodDelete, "/api/v1/tasks/abc", "task"},
		{http.MethodGet, "/api/v1/calendar/events", "task"},
		{http.MethodGet, "/api/v1/moods", "mood"},
		{http.MethodPost, "/api/v1/moods", "mood"},
		{http.MethodGet, "/api/v1/moods/suggestion", "mood"},
		{http.MethodPost, "/api/v1/commands", "command"},
		{http.MethodGet, "/api/v1/commands/history", "command"},
		{http.MethodPost, "/webhook/telegram", "telegram"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(srv, tt.method, tt.path)
			if w.Code != http.StatusOK || w.Body.String() != tt.want {
				t.Errorf("got %d %q, want 200 %q", w.Code, w.Body.String(), tt.want)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Errorf("expected request id header")
			}
		})
	}
}

func TestTelegramRouteOptional(t *testing.T) {
	srv, err := New(log.NewNop(), testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w := serve(srv, http.MethodPost, "/webhook/telegram"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without telegram handler, got %d", w.Code)
	}
}

func TestHealthRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), ServiceName) {
			t.Errorf("%s: got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestReadyCheckDatabaseDown(t *testing.T) {
	cfg := testConfig()
	cfg.DB = stubPinger{err: errors.New("closed")}
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w := serve(srv, http.MethodGet, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/live"); w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on the database, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 18089
	srv, err := New(log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
