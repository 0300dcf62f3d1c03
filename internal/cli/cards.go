package cli

import (
	"context"
	"fmt"
	"os"
)

// list prints the card collection in display order.
func (a *App) list(ctx context.Context) {
	user := a.core.User()
	for _, c := range a.core.Cards() {
		liked := " "
		if c.LikedByUser(user.ID) {
			liked = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %-30s likes:%d\n", liked, c.ID, c.Title, len(c.LikedBy))
	}
}

func (a *App) like(ctx context.Context, cardID string) {
	_ = a.core.ToggleLike(ctx, cardID)
	a.renderPopup()
}

func (a *App) deleteCard(ctx context.Context, cardID string) {
	_ = a.core.DeleteCard(ctx, cardID)
	a.renderPopup()
}

// addCard opens the add-card popup, prompts for the fields, and submits.
func (a *App) addCard(ctx context.Context) error {
	a.core.Popups().OpenAddCard()

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Enter image URL", os.Stdout)
	if err != nil {
		return err
	}

	if card, err := a.core.AddCard(ctx, title, imageURL); err == nil {
		fmt.Fprintf(a.out, "Added [%s] %s\n", card.ID, card.Title)
	}
	a.renderPopup()
	return nil
}

// editProfile opens the profile popup, prompts for name/about, and submits.
func (a *App) editProfile(ctx context.Context) error {
	a.core.Popups().OpenProfileEdit()

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	about, err := getSimpleText(a.reader, "Enter about", os.Stdout)
	if err != nil {
		return err
	}

	_ = a.core.UpdateProfile(ctx, name, about)
	a.renderPopup()
	return nil
}

// editAvatar opens the avatar popup, prompts for the URL, and submits.
func (a *App) editAvatar(ctx context.Context) error {
	a.core.Popups().OpenAvatarEdit()

	avatarURL, err := getSimpleText(a.reader, "Enter avatar URL", os.Stdout)
	if err != nil {
		return err
	}

	_ = a.core.UpdateAvatar(ctx, avatarURL)
	a.renderPopup()
	return nil
}

// open shows the image preview for a card.
func (a *App) open(cardID string) {
	if err := a.core.OpenCardPreview(cardID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	a.renderPopup()
}
