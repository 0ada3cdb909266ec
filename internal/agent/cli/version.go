package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd печатает версию клиента и адрес сервера, с которым он будет работать.
// buildVersion и buildDate подставляются через -ldflags при сборке cmd/siteauth.
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Версия клиента siteauth",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "siteauth %s (built %s)\n", buildVersion, buildDate)

			// --server есть только у root-команды
			if f := cmd.Flag("server"); f != nil {
				fmt.Fprintf(out, "server: %s\n", f.Value.String())
			}
		},
	}
}
