package model

const (
	SourceHTTP     = "http"
	SourceTelegram = "telegram"
	SourceCLI      = "cli"
)

// Scope identifies who issued a request and through which channel.
type Scope struct {
	UserID string
	Source string
}
