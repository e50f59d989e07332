// Request/response payloads for the blog endpoints.
package blog

import "time"

// CreateRequest is the payload for creating a blog post. Pointer fields
// distinguish "omitted" from an explicit zero value so defaults apply only
// when the caller said nothing.
type CreateRequest struct {
	Title     string     `json:"title" example:"Opening our new studio"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Date      *time.Time `json:"date,omitempty"`
	ReadTime  string     `json:"readTime,omitempty"`
	Category  string     `json:"category" example:"新闻"`
	Tags      []string   `json:"tags,omitempty"`
	Cover     string     `json:"cover,omitempty"`
	Published *bool      `json:"published,omitempty"` // defaults to true
}

// UpdateRequest is the payload for a partial update. Only non-nil fields are
// merged onto the stored record.
type UpdateRequest struct {
	Title     *string    `json:"title,omitempty"`
	Excerpt   *string    `json:"excerpt,omitempty"`
	Content   *string    `json:"content,omitempty"`
	Author    *string    `json:"author,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	ReadTime  *string    `json:"readTime,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Tags      *[]string  `json:"tags,omitempty"`
	Cover     *string    `json:"cover,omitempty"`
	Published *bool      `json:"published,omitempty"`
}

// MutationResponse wraps a post-mutation record with a human-readable message.
type MutationResponse struct {
	Message string `json:"message" example:"blog post created"`
	Blog    *Blog  `json:"blog"`
}

// MessageResponse carries only a message (delete).
type MessageResponse struct {
	Message string `json:"message" example:"blog post deleted"`
}
