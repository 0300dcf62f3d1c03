// Package session owns the authentication lifecycle of the client: register,
// login, durable-token re-validation on startup, and logout.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mesto-client/internal/api"
	"github.com/dmitrijs2005/mesto-client/internal/models"
	"github.com/dmitrijs2005/mesto-client/internal/tokenstore"
)

// Manager holds the current Session and keeps it consistent with the durable
// token slot: the token is written or cleared under the same lock as the
// status transition, so an Authenticated session without a stored token (or
// the reverse) is never observable.
type Manager struct {
	auth   api.AuthClient
	tokens tokenstore.Store

	mu      sync.Mutex
	session models.Session
}

// NewManager creates a Manager in the Anonymous state.
func NewManager(auth api.AuthClient, tokens tokenstore.Store) *Manager {
	return &Manager{
		auth:    auth,
		tokens:  tokens,
		session: models.Session{Status: models.StatusAnonymous},
	}
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Register creates a new account. It does not authenticate: on success the
// caller is expected to send the user to the login screen.
func (m *Manager) Register(ctx context.Context, email, password string) error {
	if err := m.auth.Register(ctx, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token, persists it, and flips the session
// to Authenticated. On any failure the session stays Anonymous and nothing is
// persisted.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Session, error) {
	token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return m.Session(), fmt.Errorf("login: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.tokens.Set(ctx, token); err != nil {
		return m.session, fmt.Errorf("persisting token: %w", err)
	}
	m.session = models.Session{Status: models.StatusAuthenticated, Email: email, Token: token}
	return m.session, nil
}

// Restore re-validates a previously stored token at startup.
//
// With no stored token it is a no-op: the session stays Anonymous and no
// collaborator call is made. Otherwise the session passes through Pending
// while the token is checked. A token the server rejects is discarded from
// the durable store, so a permanently invalid token is not retried on every
// start.
func (m *Manager) Restore(ctx context.Context) (models.Session, error) {
	token, err := m.tokens.Get(ctx)
	if err != nil {
		return m.Session(), fmt.Errorf("reading stored token: %w", err)
	}
	if token == "" {
		return m.Session(), nil
	}

	m.mu.Lock()
	m.session = models.Session{Status: models.StatusPending}
	m.mu.Unlock()

	email, err := m.auth.CheckToken(ctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.session = models.Session{Status: models.StatusAnonymous}
		if clearErr := m.tokens.Clear(ctx); clearErr != nil {
			return m.session, fmt.Errorf("discarding rejected token: %w", clearErr)
		}
		return m.session, fmt.Errorf("check token: %w", err)
	}
	m.session = models.Session{Status: models.StatusAuthenticated, Email: email, Token: token}
	return m.session, nil
}

// Logout clears the stored token and resets the session to Anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	m.session = models.Session{Status: models.StatusAnonymous}
	return nil
}
