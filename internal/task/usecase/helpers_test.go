package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"smart-routine/internal/task"
	taskSqlite "smart-routine/internal/task/repository/sqlite"
	"smart-routine/pkg/datemath"
	"smart-routine/pkg/gcalendar"
	pkgSqlite "smart-routine/pkg/sqlite"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar client for testing
type mockCalendarClient struct {
	createErr error
	listErr   error
	deleteErr error

	created []gcalendar.CreateEventRequest
	listed  []gcalendar.ListEventsRequest
	deleted []gcalendar.DeleteEventRequest
	events  []gcalendar.Event
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{
		ID:        "event-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendarClient) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listed = append(m.listed, req)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockCalendarClient) DeleteEvent(ctx context.Context, req gcalendar.DeleteEventRequest) error {
	m.deleted = append(m.deleted, req)
	return m.deleteErr
}

var errCalendarDown = errors.New("calendar down")

// fixedNow is Wednesday, January 10, 2024 08:00 UTC.
var fixedNow = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

// newTestUseCase wires the use case to a fresh SQLite file. cal may be nil.
func newTestUseCase(t *testing.T, cal *mockCalendarClient) (*implUseCase, *mockLogger) {
	t.Helper()

	db, err := pkgSqlite.Open(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	l := &mockLogger{}
	var calendar task.Calendar
	if cal != nil {
		calendar = cal
	}

	uc := New(l, taskSqlite.New(db, l), calendar, parser, Config{CalendarID: "primary"})
	uc.now = func() time.Time { return fixedNow }
	return uc, l
}
