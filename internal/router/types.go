package router

import "time"

// Intent is what a command asks the assistant to do.
type Intent string

const (
	IntentAddTask     Intent = "add_task"
	IntentListTasks   Intent = "list_tasks"
	IntentAnalyzeMood Intent = "analyze_mood"
	IntentUnknown     Intent = "unknown"
)

// Output is a classified command. Which payload fields are set depends on Intent:
// add_task fills Title and When (nil when no time was expressed), analyze_mood
// fills Text, unknown fills Raw.
type Output struct {
	Intent Intent     `json:"intent"`
	Title  string     `json:"title,omitempty"`
	When   *time.Time `json:"when,omitempty"`
	Text   string     `json:"text,omitempty"`
	Raw    string     `json:"raw,omitempty"`
}
