package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/models"
)

var movementsCmd = &cobra.Command{
	Use:     "movements",
	Aliases: []string{"movimientos"},
	Short:   "List the persisted movements of the current arqueo",
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()

		ctx, cancel := cmdContext()
		defer cancel()

		estado, err := client.EstadoActual(ctx)
		if err != nil {
			fmt.Printf("❌ Error al cargar movimientos: %v\n", err)
			return
		}
		if !estado.Abierto() {
			fmt.Println("No hay movimientos registrados: el arco está cerrado.")
			return
		}

		movements, err := client.MovimientosArco(ctx, estado.Arco.ID)
		if err != nil {
			fmt.Printf("❌ Error al cargar movimientos: %v\n", err)
			return
		}

		tipo, _ := cmd.Flags().GetString("tipo")
		if tipo != "" {
			filtered := movements[:0]
			for _, m := range movements {
				if strings.EqualFold(m.MovementType, tipo) {
					filtered = append(filtered, m)
				}
			}
			movements = filtered
		}

		if len(movements) == 0 {
			fmt.Println("No hay movimientos para este arco.")
			return
		}

		fmt.Printf("%-6s %-8s %-14s %-17s %-9s %s\n", "ID", "TIPO", "MONTO", "FECHA", "CONCEPTO", "DETALLE")
		fmt.Println(strings.Repeat("-", 72))
		for _, m := range movements {
			fmt.Printf("%-6d %-8s %-14s %-17s %-9d %s\n",
				m.MovementID,
				m.MovementType,
				models.FormatARS(m.Amount),
				m.MovementDate.Format("02/01/2006 15:04"),
				m.ConceptID,
				m.Details)
		}
	},
}

var movementsRmCmd = &cobra.Command{
	Use:   "rm [movement-id]",
	Short: "Delete one persisted movement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: ID inválido '%s'\n", args[0])
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("¿Confirmar eliminación del movimiento %d?", id)) {
			fmt.Println("Cancelado.")
			return
		}

		_, client, _ := newDeps()
		ctx, cancel := cmdContext()
		defer cancel()

		if err := client.DeleteMovimiento(ctx, uint(id)); err != nil {
			fmt.Printf("❌ Error al eliminar movimiento: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Movimiento %d eliminado.\n", id)
	},
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [s/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "si" || answer == "y"
}

func init() {
	movementsCmd.Flags().String("tipo", "", "Filter by movement type: Ingreso or Egreso")
	movementsRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	movementsCmd.AddCommand(movementsRmCmd)
}
