package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"smart-routine/internal/command"
	"smart-routine/internal/command/repository"
	"smart-routine/internal/model"
	"smart-routine/internal/mood"
	"smart-routine/internal/router"
	"smart-routine/internal/task"
)

// Process classifies a free-text command, runs it and records the exchange.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input command.ProcessInput) (command.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return command.ProcessOutput{}, command.ErrEmptyInput
	}

	now := uc.dateMath.Now(uc.now())
	classified := router.Classify(text, now)
	uc.l.Infof(ctx, "command.usecase.Process: user=%s source=%s intent=%s", sc.UserID, sc.Source, classified.Intent)

	var (
		output command.ProcessOutput
		err    error
	)
	switch classified.Intent {
	case router.IntentAddTask:
		output, err = uc.addTask(ctx, classified)
	case router.IntentListTasks:
		output, err = uc.listTasks(ctx)
	case router.IntentAnalyzeMood:
		output, err = uc.analyzeMood(ctx, classified)
	default:
		output = command.ProcessOutput{Reply: ReplyNotRecognized}
	}
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.Process: %s: %v", classified.Intent, err)
		return command.ProcessOutput{}, err
	}
	output.Intent = classified.Intent

	uc.record(ctx, sc, text, output)
	return output, nil
}

func (uc *implUseCase) addTask(ctx context.Context, classified router.Output) (command.ProcessOutput, error) {
	created, err := uc.taskUC.Create(ctx, task.CreateInput{
		Title: classified.Title,
		DueAt: classified.When,
	})
	if err != nil {
		return command.ProcessOutput{}, err
	}

	t := created.Task
	reply := fmt.Sprintf(ReplyTaskAdded, t.Title)
	if t.DueAt != nil {
		reply += " at " + uc.formatTime(*t.DueAt)
	}
	if t.CalendarLink != "" {
		reply += "\n" + t.CalendarLink
	}
	return command.ProcessOutput{Reply: reply, Task: &t}, nil
}

func (uc *implUseCase) listTasks(ctx context.Context) (command.ProcessOutput, error) {
	list, err := uc.taskUC.ListPending(ctx)
	if err != nil {
		return command.ProcessOutput{}, err
	}
	if len(list.Tasks) == 0 {
		return command.ProcessOutput{Reply: ReplyNoPendingTasks, Tasks: list.Tasks}, nil
	}

	var b strings.Builder
	b.WriteString(ReplyPendingTasks)
	for i, t := range list.Tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t.Title)
		if t.DueAt != nil {
			fmt.Fprintf(&b, " (%s)", uc.formatTime(*t.DueAt))
		}
	}
	return command.ProcessOutput{Reply: b.String(), Tasks: list.Tasks}, nil
}

func (uc *implUseCase) analyzeMood(ctx context.Context, classified router.Output) (command.ProcessOutput, error) {
	analyzed, err := uc.moodUC.Analyze(ctx, mood.AnalyzeInput{Text: classified.Text})
	if errors.Is(err, mood.ErrAnalyzerUnavailable) {
		uc.l.Warnf(ctx, "command.usecase.analyzeMood: %v (non-fatal)", err)
		return command.ProcessOutput{Reply: ReplyMoodUnavailable}, nil
	}
	if err != nil {
		return command.ProcessOutput{}, err
	}

	m := analyzed.Mood
	pct := int(math.Round(m.Confidence * 100))
	return command.ProcessOutput{Reply: fmt.Sprintf(ReplyMood, m.Label, pct), Mood: &m}, nil
}

// record stores the interaction. Failures are logged only.
func (uc *implUseCase) record(ctx context.Context, sc model.Scope, text string, output command.ProcessOutput) {
	_, err := uc.repo.CreateInteraction(ctx, repository.CreateInteractionOptions{
		Source:   sc.Source,
		Command:  text,
		Intent:   string(output.Intent),
		Response: output.Reply,
	})
	if err != nil {
		uc.l.Warnf(ctx, "command.usecase.record: %v (non-fatal)", err)
	}
}

func (uc *implUseCase) formatTime(t time.Time) string {
	return uc.dateMath.Now(t).Format(ReplyTimeLayout)
}
