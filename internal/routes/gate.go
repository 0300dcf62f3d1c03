// Package routes decides which navigation target a requested path resolves
// to, given the current session. The decision is pure: it depends on the
// arguments alone and can be re-derived on every navigation.
package routes

import "github.com/dmitrijs2005/mesto-client/internal/models"

// Known paths.
const (
	PathRoot   = "/"
	PathSignIn = "/sign-in"
	PathSignUp = "/sign-up"
)

// Decide maps a requested path to the path that should actually be shown.
//
// While authenticated, the sign-in and sign-up screens stay reachable and any
// unknown path falls back to the root. While not authenticated, the protected
// root (and any unknown path) redirects to sign-in.
func Decide(path string, session models.Session) string {
	if session.Authenticated() {
		switch path {
		case PathRoot, PathSignIn, PathSignUp:
			return path
		default:
			return PathRoot
		}
	}
	switch path {
	case PathSignIn, PathSignUp:
		return path
	default:
		return PathSignIn
	}
}
