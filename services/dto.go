package services

// CreateRequest is the payload for creating a service entry.
type CreateRequest struct {
	Name        string `json:"name" example:"Brand design"`
	Description string `json:"description"`
	URL         string `json:"url" example:"https://example.com/brand"`
	Icon        string `json:"icon,omitempty"`
	Category    string `json:"category" example:"设计"`
	Order       int    `json:"order,omitempty"`
	Active      *bool  `json:"active,omitempty"` // defaults to true
}

// UpdateRequest is the payload for a partial update; only non-nil fields are
// merged onto the stored record.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Category    *string `json:"category,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// MutationResponse wraps a post-mutation record with a message.
type MutationResponse struct {
	Message string   `json:"message" example:"service created"`
	Service *Service `json:"service"`
}

// MessageResponse carries only a message.
type MessageResponse struct {
	Message string `json:"message" example:"service deleted"`
}
