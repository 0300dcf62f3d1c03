package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for credentials and attempts to create a new account.
// The outcome is surfaced by the core as a tooltip, rendered afterwards.
func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_ = a.core.Register(ctx, email, password)
	a.renderPopup()
	return nil
}

// login prompts for credentials and tries to authenticate. On success the
// core navigates to the gallery; on failure it opens a failure tooltip.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_ = a.core.Login(ctx, email, password)
	a.renderPopup()
	return nil
}

func (a *App) logout(ctx context.Context) error {
	return a.core.Logout(ctx)
}
