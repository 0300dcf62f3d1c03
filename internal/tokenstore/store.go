// Package tokenstore persists the session token across client restarts.
// The store is a single mutable slot: at most one token exists at a time.
package tokenstore

import "context"

// Store is the durable token slot.
//
// Contract:
//   - Get returns the stored token, or "" if none is stored.
//   - Set replaces the stored token.
//   - Clear removes the stored token; clearing an empty slot is not an error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
