package constvars

const (
	EmailReminderSubject = "Appointment Reminder"
	EmailReminderBody    = "Hi %s,\n\nThis is a reminder for your appointment with Dr. %s at %s on %s.\n\nThanks!"

	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)
