package model

import "time"

// Interaction records a processed command and the reply it produced.
type Interaction struct {
	ID        string
	Source    string
	Command   string
	Intent    string
	Response  string
	CreatedAt time.Time
}
