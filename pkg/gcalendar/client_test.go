package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smart-routine/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "missing.json")
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path, ""); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", ""); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&received)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"summary": "Study",
				"location": "Library",
				"htmlLink": "https://calendar.google.com/event-uri",
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	start := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Study",
		Location:  "Library",
		Attendees: []string{"friend@example.com"},
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("unexpected start: %v", event.StartTime)
	}

	attendees, _ := received["attendees"].([]any)
	if len(attendees) != 1 {
		t.Fatalf("expected one attendee in request, got %v", received["attendees"])
	}
	if received["location"] != "Library" {
		t.Errorf("expected location in request, got %v", received["location"])
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "bad request"}}`))
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
	if err == nil {
		t.Fatalf("expected create event error")
	}
	if !errors.Is(err, gcalendar.ErrService) {
		t.Errorf("expected ErrService, got %v", err)
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			if r.URL.Query().Get("singleEvents") != "true" || r.URL.Query().Get("maxResults") != "10" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "All day",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					},
					{
						"id": "event-456",
						"summary": "Timed",
						"start": { "dateTime": "2024-05-01T09:00:00Z" },
						"end": { "dateTime": "2024-05-01T09:30:00Z" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].StartTime.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected all-day start: %v", events[0].StartTime)
	}
	if !events[1].StartTime.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected timed start: %v", events[1].StartTime)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
	})
	if !errors.Is(err, gcalendar.ErrService) {
		t.Fatalf("expected ErrService on test-fail, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	var deleted string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/calendar/v3/calendars/primary/events/") {
			deleted = strings.TrimPrefix(r.URL.Path, "/calendar/v3/calendars/primary/events/")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteEvent(context.Background(), gcalendar.DeleteEventRequest{EventID: "event-123"}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if deleted != "event-123" {
		t.Errorf("expected event-123 to be deleted, got %q", deleted)
	}

	err := client.DeleteEvent(context.Background(), gcalendar.DeleteEventRequest{CalendarID: "other", EventID: "x"})
	if !errors.Is(err, gcalendar.ErrService) {
		t.Errorf("expected ErrService, got %v", err)
	}
}
