package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExportCSV writes the currently visible rows, exactly as rendered, as a
// spreadsheet-compatible CSV. No refetch, no recompute: what you see is
// what you export.
func (d *Dataset) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	record := make([]string, len(d.Columns))
	for _, row := range d.Visible() {
		for i, col := range d.Columns {
			record[i] = CellString(row[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportDocument writes the fixed-layout movement report: title, generation
// date, the financial summary, then the visible rows as a plain table.
func (d *Dataset) ExportDocument(w io.Writer, generatedAt time.Time) error {
	var b strings.Builder

	b.WriteString("INFORME DE MOVIMIENTOS\n")
	b.WriteString("Generado: " + generatedAt.Format("02/01/2006") + "\n\n")

	b.WriteString("Resumen Financiero:\n")
	for _, line := range d.Summarize().Lines() {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	widths := d.columnWidths()
	writeTableLine(&b, d.Columns, widths)
	writeRule(&b, widths)
	for _, row := range d.Visible() {
		cells := make([]string, len(d.Columns))
		for i, col := range d.Columns {
			cells[i] = CellString(row[col])
		}
		writeTableLine(&b, cells, widths)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Dataset) columnWidths() []int {
	widths := make([]int, len(d.Columns))
	for i, col := range d.Columns {
		widths[i] = len(col)
	}
	for _, row := range d.Visible() {
		for i, col := range d.Columns {
			if n := len(CellString(row[col])); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeTableLine(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(b, "%-*s", widths[i], cell)
	}
	b.WriteString("\n")
}

func writeRule(b *strings.Builder, widths []int) {
	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	b.WriteString(strings.Repeat("-", total) + "\n")
}
