package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cajafuerte/arqueo/internal/parser"
	"github.com/cajafuerte/arqueo/internal/report"
	"github.com/cajafuerte/arqueo/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"informe"},
	Short:   "Browse and export filtered movement reports",
	Long: `Fetch the filtered movement dataset and browse it interactively, or print
it with --no-ui. All provided filters are combined (AND); omitted filters
are not sent to the server.

Examples:
  arqueo report --desde 01/08/2026 --hasta 31/08/2026 --tipo Egreso
  arqueo report --no-ui --csv informe.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		_, client, _ := newDeps()

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunReportTUI(tui.ReportDeps{Client: client, Filters: filters}); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		ctx, cancel := cmdContext()
		defer cancel()

		dataset, err := report.Query(ctx, client, filters)
		if err != nil {
			fmt.Printf("❌ Error al obtener datos: %v\n", err)
			return
		}
		if dataset.Empty() {
			fmt.Println("No hay datos para mostrar.")
			return
		}

		if err := dataset.ExportDocument(os.Stdout, time.Now()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if path, _ := cmd.Flags().GetString("csv"); path != "" {
			if err := exportToFile(path, dataset.ExportCSV); err != nil {
				fmt.Printf("❌ Error al exportar CSV: %v\n", err)
			} else {
				fmt.Printf("\n✅ CSV exportado a %s\n", path)
			}
		}
		if path, _ := cmd.Flags().GetString("doc"); path != "" {
			err := exportToFile(path, func(w io.Writer) error {
				return dataset.ExportDocument(w, time.Now())
			})
			if err != nil {
				fmt.Printf("❌ Error al exportar informe: %v\n", err)
			} else {
				fmt.Printf("✅ Informe exportado a %s\n", path)
			}
		}
	},
}

// filtersFromFlags builds the server-side filter set from the flags that
// were actually provided.
func filtersFromFlags(cmd *cobra.Command) (report.Filters, error) {
	var f report.Filters

	if s, _ := cmd.Flags().GetString("desde"); s != "" {
		t, err := parser.ParseDate(s)
		if err != nil {
			return f, err
		}
		f.Desde = &t
	}
	if s, _ := cmd.Flags().GetString("hasta"); s != "" {
		t, err := parser.ParseDate(s)
		if err != nil {
			return f, err
		}
		f.Hasta = &t
	}
	f.Tipo, _ = cmd.Flags().GetString("tipo")
	f.Turno, _ = cmd.Flags().GetString("turno")
	f.ArcoID, _ = cmd.Flags().GetUint("arco")
	if s, _ := cmd.Flags().GetString("monto-min"); s != "" {
		d, err := parser.ParseAmount(s)
		if err != nil {
			return f, err
		}
		f.MontoMinimo = &d
	}
	if s, _ := cmd.Flags().GetString("monto-max"); s != "" {
		d, err := parser.ParseAmount(s)
		if err != nil {
			return f, err
		}
		f.MontoMaximo = &d
	}
	f.BalanceNegativo, _ = cmd.Flags().GetBool("negativos")
	return f, nil
}

func exportToFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func init() {
	reportCmd.Flags().String("desde", "", "Start date (dd/mm/yyyy or yyyy-mm-dd)")
	reportCmd.Flags().String("hasta", "", "End date (dd/mm/yyyy or yyyy-mm-dd)")
	reportCmd.Flags().String("tipo", "", "Movement type: Ingreso or Egreso")
	reportCmd.Flags().StringP("turno", "t", "", "Shift (M/T/N)")
	reportCmd.Flags().Uint("arco", 0, "Restrict to one arco id")
	reportCmd.Flags().String("monto-min", "", "Minimum amount")
	reportCmd.Flags().String("monto-max", "", "Maximum amount")
	reportCmd.Flags().Bool("negativos", false, "Only sessions with negative balance")
	reportCmd.Flags().Bool("no-ui", false, "Print the report instead of the interactive view")
	reportCmd.Flags().String("csv", "", "Also export the rows to a CSV file")
	reportCmd.Flags().String("doc", "", "Also export the fixed-layout report to a file")
}
