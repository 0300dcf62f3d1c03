// Package cli is a terminal front end for the gallery client core. It plays
// the role of the view layer: it forwards user actions to the core and
// renders the resulting session, card and popup state as text.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mesto-client/internal/api"
	"github.com/dmitrijs2005/mesto-client/internal/app"
	"github.com/dmitrijs2005/mesto-client/internal/config"
	"github.com/dmitrijs2005/mesto-client/internal/logging"
	"github.com/dmitrijs2005/mesto-client/internal/popup"
	"github.com/dmitrijs2005/mesto-client/internal/tokenstore"

	_ "modernc.org/sqlite"
)

// App binds the core to terminal input/output.
type App struct {
	core   *app.App
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the token database and composes the core from the given
// configuration.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sql.Open("sqlite", cfg.TokenDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening token database: %w", err)
	}

	tokens := tokenstore.NewSQLiteStore(db)
	if err := tokens.Bootstrap(ctx); err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.AuthBaseURL, cfg.RequestTimeout)
	core := app.New(client, tokens, log)

	return &App{
		core:   core,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores a stored session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	a.core.Init(ctx)
	a.root(ctx)
}

// renderPopup prints the currently open popup, if any. Tooltips are
// dismissed once shown, like a click on the overlay would.
func (a *App) renderPopup() {
	state := a.core.Popups().State()
	switch state.Active {
	case popup.KindInfoTooltip:
		mark := "[v]"
		if state.Tooltip.Icon == popup.IconFail {
			mark = "[x]"
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, state.Tooltip.Message)
		a.core.Popups().CloseAll()
	case popup.KindImagePreview:
		fmt.Fprintf(a.out, "-- %s --\n%s\n", state.Card.Title, state.Card.ImageURL)
	case popup.KindNone:
	default:
		fmt.Fprintf(a.out, "-- %s --\n", state.Active)
	}
}
