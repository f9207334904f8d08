package router

import (
	"regexp"
	"strings"
	"time"

	"smart-routine/pkg/datemath"
)

// The title runs from "add task"/"create task" up to the first " at " or " on "
// word, or to the end. Titles that contain those words are cut short.
var reTitle = regexp.MustCompile(`(?i)(?:add|create) task\s+(.+?)(?:\s+(?:at|on)\b|$)`)

// Classify maps a free-text command to an Intent. Rules are checked in a fixed
// order and the first hit wins. now anchors any time expression in an
// add-task command.
func Classify(text string, now time.Time) Output {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch {
	case containsAny(normalized, addTaskTriggers):
		out := Output{Intent: IntentAddTask, Title: ExtractTitle(text)}
		if when, ok := datemath.Extract(text, now); ok {
			out.When = &when
		}
		return out
	case containsAny(normalized, listTasksTriggers):
		return Output{Intent: IntentListTasks}
	case containsAny(normalized, analyzeMoodTriggers):
		return Output{Intent: IntentAnalyzeMood, Text: text}
	default:
		return Output{Intent: IntentUnknown, Raw: text}
	}
}

// ExtractTitle returns the task title of an add-task command, or UntitledTask.
func ExtractTitle(text string) string {
	m := reTitle.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return UntitledTask
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return UntitledTask
	}
	return title
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
