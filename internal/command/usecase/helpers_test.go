package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"smart-routine/internal/command/repository"
	commandSqlite "smart-routine/internal/command/repository/sqlite"
	"smart-routine/internal/model"
	"smart-routine/internal/mood"
	"smart-routine/internal/task"
	"smart-routine/pkg/datemath"
	"smart-routine/pkg/log"
	pkgSqlite "smart-routine/pkg/sqlite"
)

// Mock task use case recording what it was asked to create.
type mockTaskUseCase struct {
	created   []task.CreateInput
	createErr error
	link      string
	pending   []model.Task
}

func (m *mockTaskUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	m.created = append(m.created, input)
	if m.createErr != nil {
		return task.CreateOutput{}, m.createErr
	}
	return task.CreateOutput{Task: model.Task{
		ID:           "t1",
		Title:        input.Title,
		DueAt:        input.DueAt,
		Status:       model.TaskStatusPending,
		CalendarLink: m.link,
	}}, nil
}

func (m *mockTaskUseCase) ListPending(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{Tasks: m.pending}, nil
}

func (m *mockTaskUseCase) MarkDone(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskUseCase) Delete(ctx context.Context, id string) error { return nil }

func (m *mockTaskUseCase) UpcomingEvents(ctx context.Context, input task.UpcomingInput) (task.UpcomingOutput, error) {
	return task.UpcomingOutput{}, nil
}

// Mock mood use case returning a fixed analysis.
type mockMoodUseCase struct {
	analyzed   []string
	label      model.MoodLabel
	confidence float64
	err        error
}

func (m *mockMoodUseCase) Analyze(ctx context.Context, input mood.AnalyzeInput) (mood.AnalyzeOutput, error) {
	m.analyzed = append(m.analyzed, input.Text)
	if m.err != nil {
		return mood.AnalyzeOutput{}, m.err
	}
	return mood.AnalyzeOutput{Mood: model.Mood{ID: "m1", Text: input.Text, Label: m.label, Confidence: m.confidence}}, nil
}

func (m *mockMoodUseCase) ListRecent(ctx context.Context, limit int) (mood.ListOutput, error) {
	return mood.ListOutput{}, nil
}

func (m *mockMoodUseCase) Suggest(ctx context.Context, now time.Time) (mood.SuggestOutput, error) {
	return mood.SuggestOutput{}, nil
}

// failingRepo refuses every write.
type failingRepo struct{}

func (failingRepo) CreateInteraction(ctx context.Context, opt repository.CreateInteractionOptions) (model.Interaction, error) {
	return model.Interaction{}, repository.ErrFailedToInsert
}

func (failingRepo) ListInteractions(ctx context.Context, opt repository.ListInteractionsOptions) ([]model.Interaction, error) {
	return nil, repository.ErrFailedToList
}

var errStoreDown = errors.New("store down")

// fixedNow is Wednesday, January 10, 2024 08:00 UTC.
var fixedNow = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	uc     *implUseCase
	tasks  *mockTaskUseCase
	moods  *mockMoodUseCase
	repo   repository.Repository
	parser *datemath.Parser
}

func newTestEnv(t *testing.T, timezone string) *testEnv {
	t.Helper()

	db, err := pkgSqlite.Open(context.Background(), filepath.Join(t.TempDir(), "commands.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	parser, err := datemath.NewParser(timezone)
	if err != nil {
		t.Fatalf("parser: %v", err)
	}

	env := &testEnv{
		tasks:  &mockTaskUseCase{},
		moods:  &mockMoodUseCase{label: model.MoodPositive, confidence: 0.934},
		repo:   commandSqlite.New(db, log.NewNop()),
		parser: parser,
	}
	env.uc = New(log.NewNop(), env.repo, env.tasks, env.moods, parser)
	env.uc.now = func() time.Time { return fixedNow }
	return env
}
