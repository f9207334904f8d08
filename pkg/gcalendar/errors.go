package gcalendar

import "errors"

// ErrService wraps every failure returned by the Calendar API.
var ErrService = errors.New("calendar service error")
