package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smart-routine/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIFlow(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "")

	out, err := run(t, "say", "add", "task", "Water", "plants")
	if err != nil {
		t.Fatalf("say: %v", err)
	}
	if strings.TrimSpace(out) != "Task added: Water plants" {
		t.Errorf("unexpected say output %q", out)
	}

	out, err = run(t, "tasks")
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if !strings.Contains(out, "Water plants") || !strings.Contains(strings.ToLower(out), "1 pending") {
		t.Errorf("unexpected tasks output:\n%s", out)
	}

	out, err = run(t, "--json", "say", "hello")
	if err != nil {
		t.Fatalf("say json: %v", err)
	}
	if !strings.Contains(out, `"intent": "unknown"`) {
		t.Errorf("unexpected json output %q", out)
	}

	out, err = run(t, "suggest")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.Contains(out, "No recent mood detected") {
		t.Errorf("unexpected suggest output %q", out)
	}

	out, err = run(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("unexpected history output:\n%s", out)
	}

	if _, err := run(t, "events"); err == nil {
		t.Errorf("expected events to fail without a calendar")
	}
	if _, err := run(t, "done", "missing-id"); err == nil {
		t.Errorf("expected done to fail for unknown id")
	}
}

func TestRenderTasks(t *testing.T) {
	due := time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	renderTasks(&buf, []model.Task{
		{ID: "a", Title: "Study", DueAt: &due, CalendarEventID: "e1"},
		{ID: "b", Title: "Read"},
	}, time.FixedZone("ICT", 7*3600))

	out := buf.String()
	for _, want := range []string{"Study", "Wed 10 Jan 18:00", "yes", "Read", "2 pending"} {
		if !strings.Contains(strings.ToLower(out), strings.ToLower(want)) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
