// Package model defines domain entities for the application.
package model

import "time"

// User represents a single user record.
// IDs are assigned by the store from a monotonic counter and are immutable.
// CreatedAt is fixed at creation time and survives updates verbatim.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy of the user.
// Stored records are treated as immutable; callers that need an updated
// record start from a clone rather than mutating in place.
func (u *User) Clone() *User {
	c := *u
	return &c
}
