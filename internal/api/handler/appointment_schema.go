package handler

type bookAppointmentRequest struct {
	PatientName string `json:"patient_name"     validate:"required"`
	PhoneNumber string `json:"phone_number"     validate:"required"`
	DoctorName  string `json:"doctor_name"      validate:"required"`
	Date        string `json:"appointment_date" validate:"required"`
	Time        string `json:"appointment_time" validate:"required"`
}

type reminderRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
