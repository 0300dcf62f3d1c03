// Package popup coordinates which modal overlay is visible. At most one
// popup is active at a time: opening one implicitly closes whatever was open.
package popup

import (
	"sync"

	"github.com/dmitrijs2005/mesto-client/internal/models"
)

// Kind identifies a popup.
type Kind string

const (
	KindNone         Kind = ""
	KindAvatarEdit   Kind = "avatar_edit"
	KindProfileEdit  Kind = "profile_edit"
	KindAddCard      Kind = "add_card"
	KindImagePreview Kind = "image_preview"
	KindInfoTooltip  Kind = "info_tooltip"
)

// Icon marks a tooltip as reporting success or failure.
type Icon string

const (
	IconSuccess Icon = "success"
	IconFail    Icon = "fail"
)

// Tooltip is the payload of an info tooltip.
type Tooltip struct {
	Icon    Icon
	Message string
}

// State is the full popup state. Card is set only for KindImagePreview and
// Tooltip only for KindInfoTooltip.
type State struct {
	Active  Kind
	Card    *models.Card
	Tooltip *Tooltip
}

// Controller is the single-active-popup state machine. Every Open replaces
// the whole state, so two popups can never be visible together. Payload
// requirements are enforced by the typed Open methods; there is no way to
// open an image preview without a card or a tooltip without a message.
type Controller struct {
	mu    sync.Mutex
	state State
}

func NewController() *Controller {
	return &Controller{}
}

// State returns a snapshot of the popup state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the currently visible popup kind.
func (c *Controller) Active() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Active
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Controller) OpenAvatarEdit() {
	c.set(State{Active: KindAvatarEdit})
}

func (c *Controller) OpenProfileEdit() {
	c.set(State{Active: KindProfileEdit})
}

func (c *Controller) OpenAddCard() {
	c.set(State{Active: KindAddCard})
}

// OpenImagePreview shows the full-size image of the selected card.
func (c *Controller) OpenImagePreview(card models.Card) {
	c.set(State{Active: KindImagePreview, Card: &card})
}

// OpenInfoTooltip surfaces an operation outcome to the user.
func (c *Controller) OpenInfoTooltip(t Tooltip) {
	if t.Message == "" {
		panic("popup: info tooltip requires a message")
	}
	c.set(State{Active: KindInfoTooltip, Tooltip: &t})
}

// CloseAll dismisses whatever popup is open. It is triggered by successful
// mutations, an explicit close action, or backdrop/escape dismissal.
func (c *Controller) CloseAll() {
	c.set(State{})
}
