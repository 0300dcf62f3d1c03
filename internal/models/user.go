// Package models defines the domain types of the gallery client: the current
// user profile, photo cards, and the authentication session.
package models

// User is the profile of the account the client is logged in as. There is a
// single User per session; it is replaced wholesale by the latest
// server-confirmed snapshot and never mutated field by field.
type User struct {
	ID        string
	Name      string
	About     string
	AvatarURL string
}
