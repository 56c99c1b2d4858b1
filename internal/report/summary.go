package report

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/models"
)

// Summary aggregates the currently visible rows. It is recomputed from
// scratch every time the table changes, so equal inputs always give equal
// output.
type Summary struct {
	Ingresos          decimal.Decimal
	Egresos           decimal.Decimal
	Saldo             decimal.Decimal
	Movimientos       int
	BalancesNegativos int
}

// Summarize walks the visible rows and totals them: per-type amounts, net
// balance, row count, and how many rows carry a negative balance column.
func (d *Dataset) Summarize() Summary {
	s := Summary{Ingresos: decimal.Zero, Egresos: decimal.Zero}

	montoCol, balanceCol := d.amountColumns()
	for _, row := range d.Visible() {
		s.Movimientos++

		if montoCol != "" {
			monto := cellDecimal(row[montoCol])
			switch strings.ToUpper(d.typeOf(row)) {
			case "INGRESO":
				s.Ingresos = s.Ingresos.Add(monto)
			case "EGRESO":
				s.Egresos = s.Egresos.Add(monto)
			}
		}
		if balanceCol != "" && cellDecimal(row[balanceCol]).IsNegative() {
			s.BalancesNegativos++
		}
	}
	s.Saldo = s.Ingresos.Sub(s.Egresos)
	return s
}

// Lines renders the summary as the fixed block used by terminal output and
// the document export.
func (s Summary) Lines() []string {
	lines := []string{
		"Ingresos: " + models.FormatARS(s.Ingresos),
		"Egresos: " + models.FormatARS(s.Egresos),
		"Saldo: " + models.FormatARS(s.Saldo),
	}
	if s.BalancesNegativos > 0 {
		lines = append(lines, "Arcos con balance negativo: "+strconv.Itoa(s.BalancesNegativos))
	}
	return lines
}

func (d *Dataset) amountColumns() (monto, balance string) {
	for _, col := range d.Columns {
		switch strings.ToLower(col) {
		case "monto", "amount":
			monto = col
		case "balance":
			balance = col
		}
	}
	return monto, balance
}

func cellDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(val); err == nil {
			return d
		}
	}
	return decimal.Zero
}
