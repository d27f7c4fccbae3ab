package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Appointment is a booked visit; the notification side keys reminders off it.
type Appointment struct {
	ID          int               `json:"id"`
	PatientName string            `json:"patient_name"`
	PhoneNumber string            `json:"phone_number"`
	DoctorName  string            `json:"doctor_name"`
	Date        string            `json:"appointment_date"`
	Time        string            `json:"appointment_time"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
