package router

// UntitledTask is used when no title can be cut out of an add-task command.
const UntitledTask = "Untitled Task"

var (
	addTaskTriggers     = []string{"add task", "create task"}
	listTasksTriggers   = []string{"what are my tasks", "list tasks"}
	analyzeMoodTriggers = []string{"i feel", "mood"}
)
