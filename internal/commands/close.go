package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/parser"
	"github.com/cajafuerte/arqueo/internal/tui"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Reconcile counted cash and close the open arqueo",
	Long: `Close the open arqueo. By default this opens the interactive bill-counting
screen: count bills per denomination, compare against the system balance,
and confirm the cash withdrawal recorded with the close.

Use --retiro with --yes to close without the interactive screen.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, client, tracker := newDeps()

		ctx, cancel := cmdContext()
		defer cancel()

		estado, err := client.EstadoActual(ctx)
		if err != nil {
			fmt.Printf("❌ Error al obtener estado del arco: %v\n", err)
			return
		}
		if !estado.Abierto() {
			fmt.Println("🔴 No hay un arqueo abierto para cerrar.")
			return
		}

		expected := decimal.Zero
		if saldo, err := tracker.Balance(ctx); err == nil {
			expected = saldo.SaldoTotal
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if yes {
			retiroStr, _ := cmd.Flags().GetString("retiro")
			retiro := decimal.Zero
			if retiroStr != "" {
				retiro, err = parser.ParsePositiveAmount(retiroStr)
				if err != nil {
					fmt.Printf("❌ Retiro inválido: %v\n", err)
					return
				}
			}
			saldo, err := tracker.Close(ctx, estado.Arco.ID, retiro)
			if err != nil {
				fmt.Printf("❌ Error al cerrar el arqueo: %v\n", err)
				return
			}
			fmt.Printf("✅ Arqueo #%d cerrado. Retiro registrado: %s\n", estado.Arco.ID, models.FormatARS(retiro))
			if saldo != nil {
				fmt.Printf("Saldo del último arqueo: %s\n", models.FormatARS(saldo.SaldoTotal))
			}
			return
		}

		deps := tui.CloseDeps{
			Tracker:  tracker,
			ArcoID:   estado.Arco.ID,
			Turno:    resolveTurno(cmd, cfg),
			Expected: expected,
		}
		if err := tui.RunCloseTUI(deps); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	closeCmd.Flags().StringP("turno", "t", "", "Shift (M/T/N, defaults to config)")
	closeCmd.Flags().String("retiro", "", "Withdrawal amount recorded with the close")
	closeCmd.Flags().BoolP("yes", "y", false, "Close without the interactive counting screen")
}
