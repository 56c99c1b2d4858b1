package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/session"
	"github.com/cajafuerte/arqueo/internal/staging"
)

var submitCmd = &cobra.Command{
	Use:     "submit",
	Aliases: []string{"enviar"},
	Short:   "Send the whole pending buffer as one batch",
	Long: `Send every staged movement to the backend in a single request.

The arco state is re-verified right before sending; a closed arco blocks the
batch. On success the local buffer is cleared; on failure it is left intact
so the submission can be retried.`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cfg, client, tracker := newDeps()
		turno := resolveTurno(cmd, cfg)

		ctx, cancel := cmdContext()
		defer cancel()

		n, err := staging.SubmitBatch(ctx, tracker, client, turno)
		switch {
		case errors.Is(err, staging.ErrEmptyBuffer):
			fmt.Println("No hay movimientos pendientes para enviar.")
		case errors.Is(err, session.ErrArcoCerrado):
			fmt.Println("❌ No se puede enviar: el arco está cerrado o no existe.")
		case err != nil:
			fmt.Printf("❌ Error al enviar movimientos: %v\n", err)
			fmt.Println("La pila quedó intacta; puede reintentar.")
		default:
			fmt.Printf("✅ %d movimiento(s) enviados correctamente. Pila vaciada.\n", n)
		}
	},
}

func init() {
	submitCmd.Flags().StringP("turno", "t", "", "Shift (M/T/N, defaults to config)")
}
