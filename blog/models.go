// Package blog owns the blog post collection: CRUD, filtered listing, and the
// write-path sanitization of rich content. No other package touches blog
// records.
package blog

import "time"

// Blog represents a blog post.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	ReadTime  string    `json:"readTime"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"` // order-preserving
	Cover     string    `json:"cover"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// defaultReadTime is the read-time label applied when the editor omits one.
const defaultReadTime = "5 分钟"
