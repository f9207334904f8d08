package usecase

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	// MaxTextLength caps the statement sent to the model.
	MaxTextLength = 2000
)

// Routine suggestions keyed by mood and time of day.
const (
	SuggestionPositiveMorning = "You're in a great mood! Start your day with a walk or journaling."
	SuggestionPositiveMidday  = "Feeling good? Take advantage and tackle something important now."
	SuggestionPositiveOther   = "Enjoy the rest of your day. Maybe plan something creative."

	SuggestionNegativeMorning = "Take your morning slow. Try stretching and drink some water."
	SuggestionNegativeMidday  = "Feeling down? Consider a short break or a calming activity."
	SuggestionNegativeOther   = "Rest is valid. Unplug and try something light like music or tea."

	SuggestionNoMood = "No recent mood detected. How are you feeling today?"
)
