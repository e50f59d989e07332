// Package events owns the event collection: CRUD plus filtered listing with
// a lifecycle status.
package events

import "time"

// Event statuses. Unknown values are rejected at the boundary.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the recognized event statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event represents an event listing.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	Organizer       string    `json:"organizer"`
	Status          string    `json:"status"`
	MaxParticipants int       `json:"maxParticipants"`
	RegistrationURL string    `json:"registrationUrl"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
}
