package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/db"
	"github.com/cajafuerte/arqueo/internal/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current arqueo state and balance",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cfg, _, tracker := newDeps()
		turno := resolveTurno(cmd, cfg)

		ctx, cancel := cmdContext()
		defer cancel()

		estado := tracker.Status(ctx, turno)
		if estado == nil {
			fmt.Println("⚠️  No se pudo obtener el estado del arco; se asume cerrado.")
			if snap, _ := db.LastSnapshot(); snap != nil {
				state := "cerrado"
				if snap.Abierto {
					state = "abierto"
				}
				fmt.Printf("Último estado conocido (%s): arco #%d %s, turno %s\n",
					snap.UpdatedAt.Format("02/01/2006 15:04"), snap.ArcoID, state, snap.Turno)
			}
			return
		}
		_ = db.SaveSnapshot(estado)

		if estado.Abierto() {
			fmt.Printf("🟢 Arco abierto (ID: %d, Turno: %s)\n", estado.Arco.ID, estado.Arco.Turno)
		} else {
			msg := estado.Error
			if msg == "" {
				msg = "Debe abrir el arco para operar."
			}
			fmt.Printf("🔴 Arco cerrado. %s\n", msg)
		}

		saldo, err := tracker.Balance(ctx)
		if err != nil {
			fmt.Println("No se pudo obtener el saldo del último arco.")
			return
		}
		fmt.Printf("Saldo: %s (inicial %s)\n", models.FormatARS(saldo.SaldoTotal), models.FormatARS(saldo.SaldoInicial))
		fmt.Printf("Ingresos: %s | Egresos: %s\n", models.FormatARS(saldo.TotalIngresos), models.FormatARS(saldo.TotalEgresos))

		if n, err := db.CountPending(); err == nil && n > 0 {
			fmt.Printf("Movimientos pendientes de envío: %d\n", n)
		}
	},
}

func init() {
	statusCmd.Flags().StringP("turno", "t", "", "Shift to query (M/T/N, defaults to config)")
}
