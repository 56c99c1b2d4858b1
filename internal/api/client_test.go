package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajafuerte/arqueo/internal/config"
	"github.com/cajafuerte/arqueo/internal/models"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{ServerURL: srv.URL, Token: "test-token"})
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	_, err := client.EstadoActual(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestServerErrorMessageIsVerbatim(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Ya existe un arco abierto para el turno M"}`))
	}))

	err := client.Abrir(context.Background(), "M")
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.Status)
	assert.Equal(t, "Ya existe un arco abierto para el turno M", err.Error())
}

func TestServerErrorWithoutMessageFallsBack(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Abrir(context.Background(), "M")
	require.Error(t, err)
	assert.Equal(t, "el servidor respondió 500", err.Error())
}

func TestEstadoQuery(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/arco/estado", r.URL.Path)
		assert.Equal(t, "T", r.URL.Query().Get("turno"))
		w.Write([]byte(`{"arco_abierto":true,"arco":{"id":7,"turno":"T"}}`))
	}))

	estado, err := client.Estado(context.Background(), "T")
	require.NoError(t, err)
	assert.True(t, estado.Abierto())
	assert.Equal(t, uint(7), estado.Arco.ID)
}

func TestCerrarEncodesForm(t *testing.T) {
	var gotContentType string
	var gotForm map[string][]string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{}`))
	}))

	err := client.Cerrar(context.Background(), 12, decimal.RequireFromString("5000.50"))
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, []string{"12"}, gotForm["arco_id"])
	assert.Equal(t, []string{"5000.5"}, gotForm["retiro_amount"])
}

func TestCerrarOmitsZeroRetiro(t *testing.T) {
	var gotForm map[string][]string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{}`))
	}))

	err := client.Cerrar(context.Background(), 12, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, []string{"12"}, gotForm["arco_id"])
	assert.NotContains(t, gotForm, "retiro_amount")
}

func TestSaldoUltimoArco(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/saldo-ultimo-arco", r.URL.Path)
		w.Write([]byte(`{"saldo_total":"15200.75","total_ingresos":"20000","total_egresos":"4799.25","saldo_inicial":"0"}`))
	}))

	saldo, err := client.SaldoUltimoArco(context.Background())
	require.NoError(t, err)
	assert.True(t, saldo.SaldoTotal.Equal(decimal.RequireFromString("15200.75")))
	assert.True(t, saldo.TotalIngresos.Equal(decimal.NewFromInt(20000)))
}

func TestSubmitBatchPayload(t *testing.T) {
	var gotBody struct {
		Movements []map[string]any `json:"movements"`
	}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movements/batch", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))

	movements := []models.PendingMovement{
		{
			MovementType: models.TipoIngreso,
			Amount:       decimal.NewFromInt(1500),
			Shift:        "M",
			ConceptID:    3,
			CreatedBy:    1,
			ArcoID:       9,
			Fecha:        "31/08/2026",
		},
	}
	require.NoError(t, client.SubmitBatch(context.Background(), movements))

	require.Len(t, gotBody.Movements, 1)
	m := gotBody.Movements[0]
	assert.Equal(t, "Ingreso", m["movement_type"])
	assert.Equal(t, "1500", m["amount"])
	assert.Equal(t, float64(9), m["arco_id"])
	assert.Equal(t, "31/08/2026", m["fecha"])
	assert.NotContains(t, m, "id")
}

func TestMovimientosArcoUnwrapsEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movimientos/arco/4", r.URL.Path)
		w.Write([]byte(`{"movements":[{"movement_id":1,"movement_type":"Egreso","amount":"300","movement_date":"2026-08-31T10:00:00Z","details":"hielo","concept_id":2}]}`))
	}))

	movements, err := client.MovimientosArco(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, uint(1), movements[0].MovementID)
	assert.Equal(t, "Egreso", movements[0].MovementType)
}
