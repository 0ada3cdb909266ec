package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/siteauth/internal/agent/config"
)

// ErrNotLoggedIn — профиль пуст, login ещё не выполнялся.
var ErrNotLoggedIn = errors.New("not logged in; run `siteauth login`")

// NewWhoamiCmd печатает пользователя из локального профиля. На сервер не ходит.
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Показать пользователя из профиля",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Profile.LoggedIn() {
				return ErrNotLoggedIn
			}
			p := app.Profile

			fullname := "-"
			if p.Fullname != nil {
				fullname = *p.Fullname
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%d\nemail=%s\nfullname=%s\nserver=%s\n",
				p.UserID, p.Email, fullname, p.Server,
			)
			return nil
		},
	}
}

// NewLogoutCmd удаляет локальный профиль.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить локальный профиль",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Remove(app.ProfilePath); err != nil {
				return err
			}
			app.Profile = &config.Profile{}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
