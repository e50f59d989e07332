// Package auth handles authentication and authorization: the administrator
// credential store, the bearer token service, and the middleware gate that
// protects every mutating route.
//
// This file defines the Admin entity as stored in the database and used by the
// business logic.
package auth

import "time"

// Admin represents an administrator account. The system holds exactly the
// administrative accounts created through first-time setup; there is no open
// registration.
type Admin struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never exposed in API responses
	IsFirstLogin   bool      `json:"isFirstLogin"`
	CreatedAt      time.Time `json:"createdAt"`
}
