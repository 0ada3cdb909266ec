package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/siteauth/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// При успешном входе публичные данные пользователя (id, fullname, email)
// сохраняются в локальный профиль.
//
// Пример использования:
//
//	siteauth login --email test@example.com --password StrongPass123
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email, password string
		passwordStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (сохраняет профиль)",
		Long: `Вход пользователя.

Пример:
  siteauth login --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFrom(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL)
			u, err := c.Login(email, pw)
			if err != nil {
				return err
			}

			app.Profile = &config.Profile{
				Server:     app.ServerURL,
				UserID:     u.ID,
				Fullname:   u.Fullname,
				Email:      u.Email,
				LoggedInAt: time.Now().UTC(),
			}
			if err := config.Save(app.ProfilePath, app.Profile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login ok: %s (id=%d)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (prompted if empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
