// Package models defines the data types exchanged with the gym API
// and cached locally by the client.
package models

// User is the identity record of the signed-in account.
//
// Values are replaced wholesale on every change; callers never mutate
// individual fields of a shared User.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// IsZero reports whether u carries no identity (nobody is signed in).
func (u User) IsZero() bool {
	return u.ID == ""
}
