package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		profile, err := client.Me(ctx)
		if err != nil {
			fmt.Printf("❌ No autenticado: %v\n", err)
			return
		}
		fmt.Printf("👤 %s\n", profile.DisplayName())
		if profile.Email != "" {
			fmt.Printf("   %s\n", profile.Email)
		}
		fmt.Printf("   Servidor: %s\n", cfg.ServerURL)
	},
}
