package model

import (
	"time"
)

type Contact struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"nombre" json:"nombre"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"telefono" json:"telefono"`
	Subject   string    `db:"asunto" json:"asunto"`
	Message   string    `db:"mensaje" json:"mensaje"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateContactRequest struct {
	Name    string `json:"nombre" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"telefono" binding:"required"`
	Subject string `json:"asunto" binding:"required"`
	Message string `json:"mensaje" binding:"required"`
}

type ContactAck struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
