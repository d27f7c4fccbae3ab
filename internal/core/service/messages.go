package service

import "fmt"

// Message templates rendered for the WhatsApp channel. Asterisks and
// underscores are WhatsApp formatting markers.

func ConfirmationMessage(patientName, doctorName, date, timeOfDay string) string {
	return fmt.Sprintf(`*Appointment Confirmed*

Hello *%s*!

Your appointment has been successfully booked:

*Doctor:* %s
*Date:* %s
*Time:* %s

*Important:*
- Please arrive 15 minutes early
- Bring your ID and insurance card

For any changes, call: +91-1800-HOSPITAL

_Thank you for choosing our hospital!_`, patientName, doctorName, date, timeOfDay)
}

func ReminderMessage(date, timeOfDay string) string {
	return fmt.Sprintf("Your appointment is coming up on %s at %s", date, timeOfDay)
}
