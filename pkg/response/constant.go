package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat keeps the offset so clients see the user's local time.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
