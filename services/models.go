// Package services owns the service catalog shown on the public site: links
// with an icon, a category and an explicit sort order.
package services

import "time"

// Service represents one entry in the service catalog.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// defaultIcon is used when the editor does not pick one.
const defaultIcon = "🔗"
