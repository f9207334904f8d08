package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	fileMaxSizeMB  = 10
	fileMaxBackups = 5
	fileMaxAgeDays = 30

	requestIDField = "request_id"
)
