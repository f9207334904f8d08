package usecase

const (
	ReplyTaskAdded       = "Task added: %s"
	ReplyNoPendingTasks  = "No pending tasks."
	ReplyPendingTasks    = "Pending tasks:"
	ReplyMood            = "Mood: %s (%d%%)"
	ReplyMoodUnavailable = "Mood analysis is unavailable right now."
	ReplyNotRecognized   = "Command not recognized."

	// ReplyTimeLayout formats due times in replies.
	ReplyTimeLayout = "Mon, 02 Jan 2006 15:04"

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
