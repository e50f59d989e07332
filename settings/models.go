// Package settings owns the site's generic key/value store of whatever the
// SPA reads at render time, such as titles, contact details and toggles.
package settings

import (
	"encoding/json"
	"time"
)

// Setting is one key/value pair. Value is arbitrary JSON; the server never
// interprets it.
type Setting struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description,omitempty"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
