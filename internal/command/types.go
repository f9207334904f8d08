package command

import (
	"smart-routine/internal/model"
	"smart-routine/internal/router"
)

type ProcessInput struct {
	Text string
}

// ProcessOutput is the reply to a command plus whatever the command produced.
// Task is set for add_task, Tasks for list_tasks and Mood for analyze_mood.
type ProcessOutput struct {
	Intent router.Intent
	Reply  string
	Task   *model.Task
	Tasks  []model.Task
	Mood   *model.Mood
}

type HistoryOutput struct {
	Interactions []model.Interaction
}
