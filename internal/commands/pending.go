package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/staging"
)

var pendingCmd = &cobra.Command{
	Use:     "pending",
	Aliases: []string{"pila"},
	Short:   "List movements staged for submission",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		movs, err := staging.List()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(staging.Render(movs))
	},
}

var pendingRmCmd = &cobra.Command{
	Use:   "rm [position]",
	Short: "Remove one staged movement by its list position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		position, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: posición inválida '%s'\n", args[0])
			return
		}

		mov, err := staging.Remove(position)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Eliminado de la pila: %s - %s\n", mov.MovementType, models.FormatARS(mov.Amount))
	},
}

func init() {
	pendingCmd.AddCommand(pendingRmCmd)
}
