package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Пароль берётся из --password, из stdin (--password-stdin)
// или запрашивается в терминале.
//
// Пример использования:
//
//	siteauth register --email test@example.com --fullname "Test User"
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		email, password, fullname string
		passwordStdin             bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  siteauth register --email test@example.com --password StrongPass123 --fullname "Test User"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordFrom(cmd, password, passwordStdin)
			if err != nil {
				return err
			}

			// --fullname не передан -> на сервере NULL
			var name *string
			if cmd.Flags().Changed("fullname") {
				name = &fullname
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Register(name, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful: %s\n", resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (prompted if empty)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.Flags().StringVar(&fullname, "fullname", "", "full name (optional)")
	cmd.MarkFlagRequired("email")

	return cmd
}
