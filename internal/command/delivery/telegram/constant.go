package telegram

const (
	startMessage = "👋 Welcome to *SmartRoutine*!\n\n" +
		"Tell me what to do in plain English and I will:\n" +
		"• 📝 Keep your task list\n" +
		"• 📅 Put timed tasks on Google Calendar\n" +
		"• 🧠 Track how you feel\n\n" +
		"_Example: \"add task Study math at 6pm\"_"

	helpMessage = "*Commands:*\n\n" +
		"`add task <title> [at <time>] [on <date>]` creates a task\n" +
		"`what are my tasks` lists pending tasks\n" +
		"`I feel ...` records your mood"

	errorReply = "Something went wrong while processing your message. Please try again."
)
