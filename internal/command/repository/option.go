package repository

type CreateInteractionOptions struct {
	Source   string
	Command  string
	Intent   string
	Response string
}

type ListInteractionsOptions struct {
	Limit int
}
