package gcalendar

const (
	PrimaryCalendarID = "primary"
	DefaultTokenPath  = "token.json"
)
