package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a new arqueo for a shift",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, tracker := newDeps()
		turno := resolveTurno(cmd, cfg)

		ctx, cancel := cmdContext()
		defer cancel()

		advanced, _ := cmd.Flags().GetBool("advanced")
		if advanced {
			id, err := tracker.OpenAdvanced(ctx, turno)
			if err != nil {
				fmt.Printf("❌ Error al abrir arco: %v\n", err)
				return
			}
			fmt.Printf("✅ Nuevo arqueo abierto correctamente (ID: %d, Turno: %s)\n", id, turno)
			return
		}

		if err := tracker.Open(ctx, turno); err != nil {
			fmt.Printf("❌ Error al abrir arco: %v\n", err)
			return
		}
		fmt.Printf("✅ Arco abierto correctamente (Turno: %s)\n", turno)
	},
}

func init() {
	openCmd.Flags().StringP("turno", "t", "", "Shift to open (M/T/N, defaults to config)")
	openCmd.Flags().Bool("advanced", false, "Use the advanced open endpoint and print the new session id")
}
