package settings

import "encoding/json"

// UpsertRequest is the payload for creating or updating a setting by key.
type UpsertRequest struct {
	Key         string          `json:"key" example:"site_title"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description,omitempty"`
}

// KeyValueResponse is the single-setting read shape.
type KeyValueResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// MutationResponse wraps the post-upsert setting with a message.
type MutationResponse struct {
	Message string   `json:"message" example:"setting saved"`
	Setting *Setting `json:"setting"`
}

// MessageResponse carries only a message.
type MessageResponse struct {
	Message string `json:"message" example:"setting deleted"`
}
