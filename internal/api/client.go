// Package api defines the remote collaborator interfaces the gallery client
// core depends on, together with their HTTP implementation and the sentinel
// errors used to classify failures.
package api

import (
	"context"

	"github.com/dmitrijs2005/mesto-client/internal/models"
)

// AuthClient covers the authentication endpoints.
//
// Contract:
//   - Register: create a new account; does not authenticate.
//   - Login: exchange credentials for a token.
//   - CheckToken: validate a previously issued token, returning the account
//     email it belongs to.
//
// All methods must honor context cancellation/timeouts.
type AuthClient interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	CheckToken(ctx context.Context, token string) (string, error)
}

// GalleryClient covers the profile and card endpoints. Every mutation returns
// the server-confirmed entity; local state must be updated from that value,
// never from an optimistic guess.
type GalleryClient interface {
	GetUserInfo(ctx context.Context) (models.User, error)
	GetInitialCards(ctx context.Context) ([]models.Card, error)
	SaveUserInfo(ctx context.Context, name, about string) (models.User, error)
	SaveUserAvatar(ctx context.Context, avatarURL string) (models.User, error)
	AddNewCard(ctx context.Context, title, imageURL string) (models.Card, error)
	ChangeLikeCardStatus(ctx context.Context, cardID string, liked bool) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
}

// Client is the full collaborator surface the application composes. SetToken
// installs the bearer token used on gallery requests; it is called after a
// successful login or session restore.
type Client interface {
	AuthClient
	GalleryClient
	SetToken(token string)
}
