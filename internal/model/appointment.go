package model

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "requested"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Modality says whether the visit happens at the clinic or remotely.
type Modality string

const (
	ModalityInPerson     Modality = "in-person"
	ModalityTelemedicine Modality = "telemedicine"
)

// Appointment is a patient's request for a visit. Patient fields are captured
// at creation time and are not kept in sync with any Patient record.
type Appointment struct {
	ID              string            `db:"id" json:"id"`
	PatientID       string            `db:"patient_id" json:"patient_id"`
	PatientName     string            `db:"patient_name" json:"patient_name"`
	PatientEmail    string            `db:"patient_email" json:"patient_email"`
	PatientPhone    string            `db:"patient_phone" json:"patient_phone"`
	ServiceType     ServiceID         `db:"service_type" json:"service_type"`
	AppointmentType Modality          `db:"appointment_type" json:"appointment_type"`
	RequestedDate   string            `db:"fecha_solicitada" json:"fecha_solicitada"`
	RequestedTime   string            `db:"hora_solicitada" json:"hora_solicitada"`
	Note            *string           `db:"mensaje" json:"mensaje,omitempty"`
	Status          AppointmentStatus `db:"status" json:"status"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`

	// Set by the admin on confirmation.
	ConfirmedAt      *time.Time `db:"confirmed_at" json:"confirmed_at,omitempty"`
	AssignedDate     *string    `db:"assigned_date" json:"assigned_date,omitempty"`
	AssignedTime     *string    `db:"assigned_time" json:"assigned_time,omitempty"`
	TelemedicineLink *string    `db:"telemedicine_link" json:"telemedicine_link,omitempty"`
	DoctorNotes      *string    `db:"doctor_notes" json:"doctor_notes,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientName     string    `json:"patient_name" binding:"required"`
	PatientEmail    string    `json:"patient_email" binding:"required"`
	PatientPhone    string    `json:"patient_phone" binding:"required"`
	ServiceType     ServiceID `json:"service_type" binding:"required,service_type"`
	AppointmentType Modality  `json:"appointment_type" binding:"required,oneof=in-person telemedicine"`
	RequestedDate   string    `json:"fecha_solicitada" binding:"required"`
	RequestedTime   string    `json:"hora_solicitada" binding:"required"`
	Note            *string   `json:"mensaje"`
}

type ConfirmAppointmentRequest struct {
	AssignedDate     string  `json:"assigned_date" binding:"required"`
	AssignedTime     string  `json:"assigned_time" binding:"required"`
	TelemedicineLink *string `json:"telemedicine_link"`
	DoctorNotes      *string `json:"doctor_notes"`
}

// AppointmentConfirmation is the set of fields written by a confirmation.
// Nil optional fields leave the stored value untouched.
type AppointmentConfirmation struct {
	AssignedDate     string
	AssignedTime     string
	TelemedicineLink *string
	DoctorNotes      *string
	ConfirmedAt      time.Time
}

// ScheduleDetails is the schedule the admin assigned on confirmation.
type ScheduleDetails struct {
	AssignedDate     string  `json:"assigned_date"`
	AssignedTime     string  `json:"assigned_time"`
	TelemedicineLink *string `json:"telemedicine_link,omitempty"`
	DoctorNotes      *string `json:"doctor_notes,omitempty"`
}

// ConfirmationResult acknowledges a confirmation. PatientNotified is always
// true; NotificationDelivered reports whether the message was actually stored.
type ConfirmationResult struct {
	Message               string          `json:"message"`
	AppointmentID         string          `json:"appointment_id"`
	Details               ScheduleDetails `json:"appointment_details"`
	PatientNotified       bool            `json:"patient_notified"`
	NotificationDelivered bool            `json:"notification_delivered"`
}

type AppointmentFilters struct {
	PatientID string
	Limit     int
}
