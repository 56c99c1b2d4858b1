package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/parser"
	"github.com/cajafuerte/arqueo/internal/staging"
	"github.com/cajafuerte/arqueo/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Stage a movement in the pending buffer",
	Long: `Stage an income or expense movement. The movement is held in the local
pending buffer until 'arqueo submit' sends the whole batch in one request.

Modes:
  Interactive: arqueo add (no flags)
  Quick: arqueo add --tipo Egreso --monto 150 --concepto 2

The arco state is re-checked against the server right before staging; a
closed arco blocks the movement.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cfg, client, tracker := newDeps()
		turno := resolveTurno(cmd, cfg)

		ctx, cancel := cmdContext()
		defer cancel()

		profile, err := client.Me(ctx)
		if err != nil {
			fmt.Printf("❌ No autenticado: %v\n", err)
			return
		}

		montoStr, _ := cmd.Flags().GetString("monto")
		if montoStr == "" {
			// Interactive entry; fetch concepts for the hint line, best effort.
			concepts, _ := client.ListConceptos(ctx)
			deps := tui.EntryDeps{
				Tracker:   tracker,
				Profile:   profile,
				Turno:     turno,
				Conceptos: concepts,
			}
			if err := tui.RunEntryTUI(deps); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		monto, err := parser.ParsePositiveAmount(montoStr)
		if err != nil {
			fmt.Printf("❌ Monto inválido: %v\n", err)
			return
		}
		tipo, _ := cmd.Flags().GetString("tipo")
		conceptID, _ := cmd.Flags().GetUint("concepto")
		details, _ := cmd.Flags().GetString("detalle")

		if _, err := tracker.RequireOpen(ctx, turno); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		mov, err := staging.Add(models.PendingMovement{
			MovementType: tipo,
			Amount:       monto,
			Shift:        turno,
			ConceptID:    conceptID,
			Details:      details,
			CreatedBy:    profile.UserID,
		})
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		pending, _ := staging.List()
		fmt.Printf("✅ Movimiento agregado a la pila: %s - %s\n", mov.MovementType, models.FormatARS(mov.Amount))
		fmt.Printf("Movimientos pendientes: %d\n", len(pending))
	},
}

func init() {
	addCmd.Flags().String("monto", "", "Amount (omit for interactive mode)")
	addCmd.Flags().String("tipo", models.TipoIngreso, "Movement type: Ingreso or Egreso")
	addCmd.Flags().Uint("concepto", 0, "Concept id")
	addCmd.Flags().String("detalle", "", "Free-form details")
	addCmd.Flags().StringP("turno", "t", "", "Shift (M/T/N, defaults to config)")
}
