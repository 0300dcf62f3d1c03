package models

// SessionStatus describes where the client is in the authentication
// lifecycle.
type SessionStatus string

const (
	// StatusAnonymous means no valid credentials are held.
	StatusAnonymous SessionStatus = "anonymous"
	// StatusPending is the transient state while a stored token is being
	// re-validated on startup.
	StatusPending SessionStatus = "pending"
	// StatusAuthenticated means the server has confirmed the token.
	StatusAuthenticated SessionStatus = "authenticated"
)

// Session is the authentication state of the running client.
//
// Invariant: Email and Token are non-empty if and only if
// Status == StatusAuthenticated.
type Session struct {
	Status SessionStatus
	Email  string
	Token  string
}

// Authenticated reports whether the session holds confirmed credentials.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}
