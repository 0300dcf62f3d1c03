package api

import "errors"

// Sentinel errors returned by collaborator implementations. Callers match
// them with errors.Is.
var (
	// ErrUnavailable means the server could not be reached or answered with
	// an unrecognized failure.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized covers invalid credentials and expired or malformed
	// tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is returned when registering an email that already exists.
	ErrConflict = errors.New("already exists")
	// ErrBadRequest means the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound means the requested entity does not exist on the server.
	ErrNotFound = errors.New("not found")
)
