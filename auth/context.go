// Context plumbing for the authenticated admin identity. The middleware puts
// the admin id into the request context; handlers that need it read it back
// through these helpers.
package auth

import "context"

// contextKey is a private type so this package's context keys cannot collide
// with keys from other packages.
type contextKey string

const adminIDContextKey contextKey = "admin_id"

// NewContextWithAdminID returns a child context carrying the admin id.
func NewContextWithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDContextKey, adminID)
}

// AdminIDFromContext extracts the admin id set by the access guard. The bool
// reports whether an authenticated identity is present.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDContextKey).(string)
	return adminID, ok && adminID != ""
}
