// Package app wires the session manager, card store, popup controller and
// notifier together and drives them in response to user actions. It owns the
// current route and re-evaluates it through the route gate after every
// session change.
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mesto-client/internal/api"
	"github.com/dmitrijs2005/mesto-client/internal/cards"
	"github.com/dmitrijs2005/mesto-client/internal/logging"
	"github.com/dmitrijs2005/mesto-client/internal/models"
	"github.com/dmitrijs2005/mesto-client/internal/popup"
	"github.com/dmitrijs2005/mesto-client/internal/routes"
	"github.com/dmitrijs2005/mesto-client/internal/session"
	"github.com/dmitrijs2005/mesto-client/internal/tokenstore"
)

// App is the application core behind the view layer.
type App struct {
	client  api.Client
	session *session.Manager
	cards   *cards.Store
	popups  *popup.Controller
	notify  *popup.Notifier
	log     logging.Logger

	mu    sync.Mutex
	route string
}

// New composes the core from its collaborators.
func New(client api.Client, tokens tokenstore.Store, log logging.Logger) *App {
	a := &App{
		client:  client,
		session: session.NewManager(client, tokens),
		cards:   cards.NewStore(client),
		popups:  popup.NewController(),
		log:     log,
		route:   routes.PathSignIn,
	}
	a.notify = popup.NewNotifier(a.popups, a.Navigate)
	return a
}

// Init is the single startup entry point: it restores a stored session if
// one exists and, when that succeeds, loads the profile and cards. It
// replaces implicit mount-time effects with an explicit, documented order.
func (a *App) Init(ctx context.Context) {
	sess, err := a.session.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if sess.Authenticated() {
		a.client.SetToken(sess.Token)
		if err := a.cards.Load(ctx); err != nil {
			a.log.Error(ctx, "initial load failed", "error", err)
		}
	}
	a.Navigate(routes.PathRoot)
}

// Register creates an account and surfaces the outcome through the notifier.
// A successful registration does not authenticate.
func (a *App) Register(ctx context.Context, email, password string) error {
	err := a.session.Register(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "registration failed", "error", err)
	}
	a.notify.RegisterOutcome(err)
	return err
}

// Login authenticates, loads the profile and cards, and navigates to the
// gallery. Failures surface through the notifier and leave the session
// anonymous.
func (a *App) Login(ctx context.Context, email, password string) error {
	sess, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		a.notify.LoginOutcome(err)
		return err
	}
	a.client.SetToken(sess.Token)
	if err := a.cards.Load(ctx); err != nil {
		a.log.Error(ctx, "initial load failed", "error", err)
	}
	a.notify.LoginOutcome(nil)
	return nil
}

// Logout clears the stored token, discards the in-memory collection and
// returns to the sign-in screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.cards.Reset()
	a.popups.CloseAll()
	a.Navigate(routes.PathSignIn)
	return nil
}

// ToggleLike flips the like on a card. A stale response (a newer toggle was
// issued meanwhile) is benign and only logged; other failures surface
// through the notifier.
func (a *App) ToggleLike(ctx context.Context, cardID string) error {
	_, err := a.cards.ToggleLike(ctx, cardID)
	if errors.Is(err, cards.ErrStaleResponse) {
		a.log.Debug(ctx, "dropped stale like response", "card_id", cardID)
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "like toggle failed", "card_id", cardID, "error", err)
		a.notify.MutationFailure(err)
	}
	return err
}

// AddCard creates a card and closes the add-card popup on success.
func (a *App) AddCard(ctx context.Context, title, imageURL string) (models.Card, error) {
	card, err := a.cards.Add(ctx, title, imageURL)
	if err != nil {
		a.log.Error(ctx, "add card failed", "error", err)
		a.notify.MutationFailure(err)
		return models.Card{}, err
	}
	a.popups.CloseAll()
	return card, nil
}

// DeleteCard removes a card from the server and the local collection.
func (a *App) DeleteCard(ctx context.Context, cardID string) error {
	if err := a.cards.Delete(ctx, cardID); err != nil {
		a.log.Error(ctx, "delete card failed", "card_id", cardID, "error", err)
		a.notify.MutationFailure(err)
		return err
	}
	return nil
}

// UpdateProfile saves the profile and closes the edit popup on success.
func (a *App) UpdateProfile(ctx context.Context, name, about string) error {
	if _, err := a.cards.UpdateProfile(ctx, name, about); err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		a.notify.MutationFailure(err)
		return err
	}
	a.popups.CloseAll()
	return nil
}

// UpdateAvatar saves the avatar and closes the edit popup on success.
func (a *App) UpdateAvatar(ctx context.Context, avatarURL string) error {
	if _, err := a.cards.UpdateAvatar(ctx, avatarURL); err != nil {
		a.log.Error(ctx, "avatar update failed", "error", err)
		a.notify.MutationFailure(err)
		return err
	}
	a.popups.CloseAll()
	return nil
}

// OpenCardPreview opens the image preview popup for a card in the
// collection.
func (a *App) OpenCardPreview(cardID string) error {
	card, err := a.cards.Card(cardID)
	if err != nil {
		return err
	}
	a.popups.OpenImagePreview(card)
	return nil
}

// Navigate resolves the requested path through the route gate and stores the
// result as the current route.
func (a *App) Navigate(path string) {
	target := routes.Decide(path, a.session.Session())
	a.mu.Lock()
	a.route = target
	a.mu.Unlock()
}

// Route returns the current route.
func (a *App) Route() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

// Session returns the current session snapshot.
func (a *App) Session() models.Session {
	return a.session.Session()
}

// User returns the current profile snapshot.
func (a *App) User() models.User {
	return a.cards.User()
}

// Cards returns the collection in display order.
func (a *App) Cards() []models.Card {
	return a.cards.Cards()
}

// Popups exposes the popup controller to the view layer.
func (a *App) Popups() *popup.Controller {
	return a.popups
}
