package model

import (
	"time"
)

// Patient is a registered portal user. Email is unique.
type Patient struct {
	ID              string    `db:"id" json:"id"`
	FirstName       string    `db:"nombre" json:"nombre"`
	LastName        string    `db:"apellido" json:"apellido"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"telefono" json:"telefono"`
	BirthDate       *string   `db:"fecha_nacimiento" json:"fecha_nacimiento,omitempty"`
	Address         *string   `db:"direccion" json:"direccion,omitempty"`
	InsuranceNumber *string   `db:"numero_seguro" json:"numero_seguro,omitempty"`
	Insurance       *string   `db:"seguro" json:"seguro,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type RegisterPatientRequest struct {
	FirstName       string  `json:"nombre" binding:"required"`
	LastName        string  `json:"apellido" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	Phone           string  `json:"telefono" binding:"required"`
	BirthDate       *string `json:"fecha_nacimiento"`
	Address         *string `json:"direccion"`
	InsuranceNumber *string `json:"numero_seguro"`
	Insurance       *string `json:"seguro"`
}

type RegisterPatientResponse struct {
	Message     string `json:"message"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
}

// PatientLoginRequest is read from the query string.
type PatientLoginRequest struct {
	Email string `form:"email" binding:"required"`
	Phone string `form:"phone" binding:"required"`
}

type PatientLoginResponse struct {
	Message      string `json:"message"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
}
