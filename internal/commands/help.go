package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for arqueo",
	Long:  `Display detailed help for all arqueo commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 █████╗ ██████╗  ██████╗ ██╗   ██╗███████╗ ██████╗
██╔══██╗██╔══██╗██╔═══██╗██║   ██║██╔════╝██╔═══██╗
███████║██████╔╝██║   ██║██║   ██║█████╗  ██║   ██║
██╔══██║██╔══██╗██║▄▄ ██║██║   ██║██╔══╝  ██║   ██║
██║  ██║██║  ██║╚██████╔╝╚██████╔╝███████╗╚██████╔╝
╚═╝  ╚═╝╚═╝  ╚═╝ ╚══▀▀═╝  ╚═════╝ ╚══════╝ ╚═════╝

arqueo - Cash-Drawer Session Client

COMMANDS:

  status                  Show whether an arqueo is open for the shift
    -t, --turno           Shift to check (M/T/N)

  open                    Open an arqueo for the shift
    -t, --turno           Shift to open (M/T/N)
    --advanced            Advanced opening (prints the new arqueo id)

  close                   Count bills, reconcile and close the arqueo
    --retiro              Withdrawal amount before closing
    -y, --yes             Close without the interactive count

    Count screen keys:
      ↑/↓           Move between denominations
      +/-, ←/→      Adjust bill counts
      enter         Continue to withdrawal and close
      esc/q         Cancel

  add                     Stage a movement in the local queue
    --monto               Amount (quick mode, skips the TUI)
    --tipo                Ingreso or Egreso
    --concepto            Concept id
    --detalle             Free-text details
    -t, --turno           Shift

  pending (pila)          Show the staged movement queue
    rm <position>         Drop one staged movement

  submit (enviar)         Send all staged movements in one batch

  movements (movimientos) Show the open arqueo's recorded movements
    --tipo                Filter by Ingreso/Egreso
    rm <id>               Delete a recorded movement
      -y, --yes           Skip confirmation

  report (informe)        Browse and export filtered reports
    --desde / --hasta     Date range
    --tipo / --turno      Movement type and shift
    --arco                Single arqueo id
    --monto-min/--monto-max  Amount range
    --negativos           Only negative-balance sessions
    --no-ui               Print instead of the interactive view
    --csv / --doc         Export to file

    Report keys:
      /             Filter rows by text
      f             Cycle the type filter
      r             Refetch from the server
      e / d         Export CSV / text report
      esc/q         Quit

  admin                   Manage usuarios, roles and conceptos
    usuarios|roles|conceptos [add|edit|rm]
    usuarios reset-password <id>

  whoami                  Show the authenticated user
  version                 Show version information
  help                    Show this help

Configuration lives in ~/.arqueo/config.env:
  ARQUEO_SERVER_URL, ARQUEO_TOKEN, ARQUEO_TURNO

`)
}
