package model

import (
	"time"
)

const SettingDoctorImage = "doctor_image"

// Setting is a single-row configuration record. Writes are last-writer-wins.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type DoctorImage struct {
	ImageURL  string     `json:"image_url"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UpdateDoctorImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}
