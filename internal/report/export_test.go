package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVMirrorsVisibleRows(t *testing.T) {
	ds := sampleDataset(t)
	ds.QuickFilter("", "Egreso")

	var buf strings.Builder
	require.NoError(t, ds.ExportCSV(&buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3, "header plus the two visible rows")
	assert.Equal(t, ds.Columns, records[0])
	assert.Equal(t, "hielo", records[1][4])
	assert.Equal(t, "proveedor", records[2][4])
	assert.Equal(t, "300", records[1][2], "cells are exported verbatim")
}

func TestExportCSVEmptyDataset(t *testing.T) {
	ds, err := ParseDataset([]byte(`[]`))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, ds.ExportCSV(&buf))
	assert.Equal(t, "\n", buf.String(), "just the empty header line")
}

func TestExportDocumentLayout(t *testing.T) {
	ds := sampleDataset(t)

	var buf strings.Builder
	generated := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	require.NoError(t, ds.ExportDocument(&buf, generated))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "INFORME DE MOVIMIENTOS\n"))
	assert.Contains(t, out, "Generado: 31/08/2026")
	assert.Contains(t, out, "Resumen Financiero:")
	assert.Contains(t, out, "Ingresos: $3.500,50")
	assert.Contains(t, out, "Arcos con balance negativo: 1")
	assert.Contains(t, out, "proveedor")

	// The summary block precedes the table.
	assert.Less(t, strings.Index(out, "Resumen Financiero:"), strings.Index(out, "Fecha"))
}

func TestExportDocumentFollowsQuickFilter(t *testing.T) {
	ds := sampleDataset(t)
	ds.QuickFilter("hielo", "")

	var buf strings.Builder
	require.NoError(t, ds.ExportDocument(&buf, time.Now()))

	out := buf.String()
	assert.Contains(t, out, "hielo")
	assert.NotContains(t, out, "proveedor")
}
