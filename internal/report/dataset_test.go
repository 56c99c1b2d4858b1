package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `[
	{"Fecha":"2026-08-30","Tipo":"Ingreso","Monto":1500.50,"Turno":"M","Detalles":"venta mostrador","Balance":1500.50},
	{"Fecha":"2026-08-30","Tipo":"Egreso","Monto":300,"Turno":"M","Detalles":"hielo","Balance":1200.50},
	{"Fecha":"2026-08-31","Tipo":"Ingreso","Monto":2000,"Turno":"T","Detalles":"venta salón","Balance":3200.50},
	{"Fecha":"2026-08-31","Tipo":"Egreso","Monto":4000,"Turno":"T","Detalles":"proveedor","Balance":-799.50}
]`

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := ParseDataset(json.RawMessage(sampleReport))
	require.NoError(t, err)
	return ds
}

func TestParseDatasetPreservesColumnOrder(t *testing.T) {
	ds := sampleDataset(t)

	assert.Equal(t, []string{"Fecha", "Tipo", "Monto", "Turno", "Detalles", "Balance"}, ds.Columns)
	require.Len(t, ds.Rows, 4)
	assert.Len(t, ds.Visible(), 4, "a fresh dataset shows every row")
}

func TestParseDatasetKeepsNumbersExact(t *testing.T) {
	ds := sampleDataset(t)

	n, ok := ds.Rows[0]["Monto"].(json.Number)
	require.True(t, ok, "numeric cells stay json.Number, got %T", ds.Rows[0]["Monto"])
	assert.Equal(t, "1500.50", n.String())
}

func TestParseDatasetEmptyArray(t *testing.T) {
	ds, err := ParseDataset(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.True(t, ds.Empty())
	assert.Empty(t, ds.Visible())
}

func TestParseDatasetRejectsNonArray(t *testing.T) {
	_, err := ParseDataset(json.RawMessage(`{"rows":[]}`))
	assert.Error(t, err)
}

func TestQuickFilterCombinesSearchAndTipo(t *testing.T) {
	ds := sampleDataset(t)

	ds.QuickFilter("venta", "")
	assert.Len(t, ds.Visible(), 2)

	ds.QuickFilter("venta", "Ingreso")
	require.Len(t, ds.Visible(), 2)

	ds.QuickFilter("venta", "Egreso")
	assert.Empty(t, ds.Visible(), "both conditions must hold")

	// Dropping the tipo condition restores the search-only set.
	ds.QuickFilter("venta", "")
	assert.Len(t, ds.Visible(), 2)

	ds.QuickFilter("", "")
	assert.Len(t, ds.Visible(), 4)
}

func TestQuickFilterIsCaseInsensitive(t *testing.T) {
	ds := sampleDataset(t)

	ds.QuickFilter("PROVEEDOR", "")
	require.Len(t, ds.Visible(), 1)

	ds.QuickFilter("", "ingreso")
	assert.Len(t, ds.Visible(), 2)
}

func TestQuickFilterIsIdempotent(t *testing.T) {
	ds := sampleDataset(t)

	ds.QuickFilter("m", "Ingreso")
	first := ds.Visible()
	ds.QuickFilter("m", "Ingreso")
	assert.Equal(t, first, ds.Visible())
}

func TestVisibleKeepsDatasetOrder(t *testing.T) {
	ds := sampleDataset(t)
	ds.QuickFilter("", "Egreso")

	rows := ds.Visible()
	require.Len(t, rows, 2)
	assert.Equal(t, "hielo", CellString(rows[0]["Detalles"]))
	assert.Equal(t, "proveedor", CellString(rows[1]["Detalles"]))
}

func TestFiltersValuesOnlySendsProvided(t *testing.T) {
	desde := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	min := decimal.NewFromInt(100)
	f := Filters{
		Desde:           &desde,
		Tipo:            "Egreso",
		MontoMinimo:     &min,
		BalanceNegativo: true,
	}

	q := f.Values()
	assert.Equal(t, "2026-08-01", q.Get("fecha_Desde"))
	assert.Equal(t, "Egreso", q.Get("tipo"))
	assert.Equal(t, "100", q.Get("monto_Minimo"))
	assert.Equal(t, "1", q.Get("balance_negativo"))

	for _, absent := range []string{"fecha_hasta", "turno", "arco_id", "monto_Maximo"} {
		_, ok := q[absent]
		assert.False(t, ok, "%s should not be sent", absent)
	}

	assert.Empty(t, Filters{}.Values())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "hola", CellString("hola"))
	assert.Equal(t, "12.5", CellString(json.Number("12.5")))
	assert.Equal(t, "true", CellString(true))
}
