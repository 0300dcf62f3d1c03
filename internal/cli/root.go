package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mesto-client/internal/routes"
)

// getStatus builds the prompt suffix: the signed-in email (if any) and the
// current route.
func (a *App) getStatus() string {
	s := a.core.Route()
	if sess := a.core.Session(); sess.Email != "" {
		s = sess.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// root runs the command loop until EOF or an explicit exit.
func (a *App) root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Mesto (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "mesto %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.core.Session().Authenticated() {
				fmt.Fprintln(a.out, "Available commands: list, like <id>, del <id>, add, open <id>, profile, avatar, close, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.core.Navigate(routes.PathSignUp)
			_ = a.register(ctx)
		case "login":
			a.core.Navigate(routes.PathSignIn)
			_ = a.login(ctx)
		case "logout":
			_ = a.logout(ctx)
		case "list":
			a.list(ctx)
		case "like":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: like <id>")
				continue
			}
			a.like(ctx, args[0])
		case "del":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			a.deleteCard(ctx, args[0])
		case "add":
			_ = a.addCard(ctx)
		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <id>")
				continue
			}
			a.open(args[0])
		case "profile":
			_ = a.editProfile(ctx)
		case "avatar":
			_ = a.editAvatar(ctx)
		case "close":
			a.core.Popups().CloseAll()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
