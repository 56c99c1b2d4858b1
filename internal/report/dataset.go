// Package report keeps the canonical report dataset in a typed in-memory
// model; every table rendering and export is a projection of it. Data is
// never read back out of rendered output.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/parser"
)

// Filters are the server-side report filters. All provided filters are
// ANDed by the backend; absent ones are not sent.
type Filters struct {
	Desde           *time.Time
	Hasta           *time.Time
	Tipo            string
	Turno           string
	ArcoID          uint
	MontoMinimo     *decimal.Decimal
	MontoMaximo     *decimal.Decimal
	BalanceNegativo bool
}

// Values encodes only the filters that were actually provided.
func (f Filters) Values() url.Values {
	q := url.Values{}
	if f.Desde != nil {
		q.Set("fecha_Desde", parser.FormatDateParam(*f.Desde))
	}
	if f.Hasta != nil {
		q.Set("fecha_hasta", parser.FormatDateParam(*f.Hasta))
	}
	if f.Tipo != "" {
		q.Set("tipo", f.Tipo)
	}
	if f.Turno != "" {
		q.Set("turno", f.Turno)
	}
	if f.ArcoID > 0 {
		q.Set("arco_id", strconv.FormatUint(uint64(f.ArcoID), 10))
	}
	if f.MontoMinimo != nil {
		q.Set("monto_Minimo", f.MontoMinimo.String())
	}
	if f.MontoMaximo != nil {
		q.Set("monto_Maximo", f.MontoMaximo.String())
	}
	if f.BalanceNegativo {
		q.Set("balance_negativo", "1")
	}
	return q
}

// Row is one report row keyed by column name.
type Row map[string]any

// Dataset holds the fetched rows with their dynamic column order, plus the
// current quick-filter state.
type Dataset struct {
	Columns []string
	Rows    []Row

	search  string
	tipo    string
	visible []int // indexes into Rows, recomputed by QuickFilter
}

// Query fetches the filtered dataset from the backend.
func Query(ctx context.Context, client *api.Client, f Filters) (*Dataset, error) {
	raw, err := client.Graficos(ctx, f.Values())
	if err != nil {
		return nil, err
	}
	return ParseDataset(raw)
}

// ParseDataset decodes the dynamic-column row array. Column order follows
// the first row's key order, which json.Unmarshal into a map would lose, so
// the token stream is walked directly. Numbers stay json.Number to avoid
// float drift in money columns.
func ParseDataset(raw json.RawMessage) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("decoding report: expected an array")
	}

	ds := &Dataset{}
	for dec.More() {
		row, order, err := decodeRow(dec)
		if err != nil {
			return nil, fmt.Errorf("decoding report row: %w", err)
		}
		if ds.Columns == nil {
			ds.Columns = order
		}
		ds.Rows = append(ds.Rows, row)
	}
	ds.QuickFilter("", "")
	return ds, nil
}

func decodeRow(dec *json.Decoder) (Row, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected an object")
	}

	row := Row{}
	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		row[key] = value
		order = append(order, key)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, nil, err
	}
	return row, order, nil
}

// QuickFilter recomputes the visible set from the full dataset: a row is
// visible when any cell contains the search term (case-insensitive) AND its
// type column matches tipo when tipo is non-empty. Re-applying with the
// same arguments is a no-op; clearing tipo restores the search-only set.
func (d *Dataset) QuickFilter(search, tipo string) {
	d.search = strings.ToLower(strings.TrimSpace(search))
	d.tipo = tipo

	d.visible = d.visible[:0]
	for i, row := range d.Rows {
		if d.rowMatches(row) {
			d.visible = append(d.visible, i)
		}
	}
}

func (d *Dataset) rowMatches(row Row) bool {
	if d.tipo != "" && !strings.EqualFold(d.typeOf(row), d.tipo) {
		return false
	}
	if d.search == "" {
		return true
	}
	for _, col := range d.Columns {
		if strings.Contains(strings.ToLower(CellString(row[col])), d.search) {
			return true
		}
	}
	return false
}

// Visible returns the currently filtered rows in dataset order.
func (d *Dataset) Visible() []Row {
	rows := make([]Row, 0, len(d.visible))
	for _, i := range d.visible {
		rows = append(rows, d.Rows[i])
	}
	return rows
}

// Empty reports whether the fetched dataset has no rows at all, as opposed
// to a quick filter hiding everything.
func (d *Dataset) Empty() bool {
	return len(d.Rows) == 0
}

// CellString renders a cell for display, search, and export.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// typeOf finds the movement-type cell regardless of the column's exact
// casing ("Tipo", "tipo", "movement_type").
func (d *Dataset) typeOf(row Row) string {
	for _, col := range d.Columns {
		lower := strings.ToLower(col)
		if lower == "tipo" || lower == "movement_type" {
			return CellString(row[col])
		}
	}
	return ""
}
