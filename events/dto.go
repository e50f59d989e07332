package events

import "time"

// CreateRequest is the payload for creating an event.
type CreateRequest struct {
	Title           string     `json:"title" example:"Open studio night"`
	Description     string     `json:"description"`
	Date            *time.Time `json:"date"`
	Location        string     `json:"location,omitempty"`
	Category        string     `json:"category" example:"工作坊"`
	Organizer       string     `json:"organizer,omitempty"`
	Status          string     `json:"status,omitempty" example:"upcoming"`
	MaxParticipants int        `json:"maxParticipants,omitempty"`
	RegistrationURL string     `json:"registrationUrl,omitempty"`
	Published       *bool      `json:"published,omitempty"` // defaults to true
}

// UpdateRequest is the payload for a partial update; only non-nil fields are
// merged onto the stored record.
type UpdateRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Organizer       *string    `json:"organizer,omitempty"`
	Status          *string    `json:"status,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
	RegistrationURL *string    `json:"registrationUrl,omitempty"`
	Published       *bool      `json:"published,omitempty"`
}

// MutationResponse wraps a post-mutation record with a message.
type MutationResponse struct {
	Message string `json:"message" example:"event created"`
	Event   *Event `json:"event"`
}

// MessageResponse carries only a message.
type MessageResponse struct {
	Message string `json:"message" example:"event deleted"`
}
