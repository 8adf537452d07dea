package model

import (
	"time"
)

// Flyer is the promotional page for one service. At most one per ServiceID.
type Flyer struct {
	ID                 string    `json:"id"`
	ServiceID          ServiceID `json:"service_id"`
	Title              string    `json:"title"`
	ImageURL           string    `json:"image_url"`
	Benefits           []string  `json:"benefits"`
	Conditions         []string  `json:"conditions"`
	Process            []string  `json:"process"`
	Safety             string    `json:"safety"`
	Duration           string    `json:"duration"`
	Frequency          string    `json:"frequency"`
	Location           string    `json:"location"`
	ContactPhone       string    `json:"contact_phone"`
	ContactWebsite     string    `json:"contact_website"`
	OfferTitle         *string   `json:"offer_title,omitempty"`
	OfferPrice         *string   `json:"offer_price,omitempty"`
	OfferOriginalPrice *string   `json:"offer_original_price,omitempty"`
	OfferSavings       *string   `json:"offer_savings,omitempty"`
	OfferDescription   *string   `json:"offer_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CreateFlyerRequest struct {
	ServiceID          ServiceID `json:"service_id" binding:"required,service_type"`
	Title              string    `json:"title" binding:"required"`
	ImageURL           string    `json:"image_url"`
	Benefits           []string  `json:"benefits"`
	Conditions         []string  `json:"conditions"`
	Process            []string  `json:"process"`
	Safety             string    `json:"safety"`
	Duration           string    `json:"duration"`
	Frequency          string    `json:"frequency"`
	Location           string    `json:"location"`
	ContactPhone       string    `json:"contact_phone"`
	ContactWebsite     string    `json:"contact_website"`
	OfferTitle         *string   `json:"offer_title"`
	OfferPrice         *string   `json:"offer_price"`
	OfferOriginalPrice *string   `json:"offer_original_price"`
	OfferSavings       *string   `json:"offer_savings"`
	OfferDescription   *string   `json:"offer_description"`
}

// UpdateFlyerRequest carries a partial update; nil fields are left unchanged.
type UpdateFlyerRequest struct {
	Title              *string   `json:"title"`
	ImageURL           *string   `json:"image_url"`
	Benefits           *[]string `json:"benefits"`
	Conditions         *[]string `json:"conditions"`
	Process            *[]string `json:"process"`
	Safety             *string   `json:"safety"`
	Duration           *string   `json:"duration"`
	Frequency          *string   `json:"frequency"`
	Location           *string   `json:"location"`
	ContactPhone       *string   `json:"contact_phone"`
	ContactWebsite     *string   `json:"contact_website"`
	OfferTitle         *string   `json:"offer_title"`
	OfferPrice         *string   `json:"offer_price"`
	OfferOriginalPrice *string   `json:"offer_original_price"`
	OfferSavings       *string   `json:"offer_savings"`
	OfferDescription   *string   `json:"offer_description"`
}
