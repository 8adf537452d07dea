package model

import (
	"time"
)

type MessageType string

const (
	MessageTypeGeneral                 MessageType = "general"
	MessageTypeAppointment             MessageType = "appointment"
	MessageTypeMedical                 MessageType = "medical"
	MessageTypeReminder                MessageType = "reminder"
	MessageTypeAppointmentConfirmation MessageType = "appointment_confirmation"
)

// Message is one entry of the patient/admin thread. Ids are either a
// patient id or AdminID.
type Message struct {
	ID            string      `db:"id" json:"id"`
	SenderID      string      `db:"sender_id" json:"sender_id"`
	SenderName    string      `db:"sender_name" json:"sender_name"`
	ReceiverID    string      `db:"receiver_id" json:"receiver_id"`
	ReceiverName  string      `db:"receiver_name" json:"receiver_name"`
	Subject       string      `db:"subject" json:"subject"`
	Body          string      `db:"message" json:"message"`
	Type          MessageType `db:"message_type" json:"message_type"`
	AppointmentID *string     `db:"appointment_id" json:"appointment_id,omitempty"`
	IsRead        bool        `db:"is_read" json:"is_read"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	ReadAt        *time.Time  `db:"read_at" json:"read_at,omitempty"`
}

// MessageSender identifies who is writing; read from the query string.
type MessageSender struct {
	ID   string `form:"sender_id" binding:"required"`
	Name string `form:"sender_name" binding:"required"`
}

type SendMessageRequest struct {
	ReceiverID    string      `json:"receiver_id" binding:"required"`
	ReceiverName  string      `json:"receiver_name" binding:"required"`
	Subject       string      `json:"subject" binding:"required"`
	Body          string      `json:"message" binding:"required"`
	Type          MessageType `json:"message_type" binding:"omitempty,oneof=general appointment medical reminder appointment_confirmation"`
	AppointmentID *string     `json:"appointment_id"`
}

type ReplyMessageRequest struct {
	Body string `json:"message" binding:"required"`
}

type UnreadCount struct {
	UserID      string `json:"user_id"`
	UnreadCount int    `json:"unread_count"`
}

type AdminMessagePoll struct {
	UnreadCount    int        `json:"unread_count"`
	LatestMessages []*Message `json:"latest_messages"`
}
