package staging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/config"
	"github.com/cajafuerte/arqueo/internal/db"
	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/session"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Open(":memory:"))
	t.Cleanup(func() { db.Close() })
}

func validMovement() models.PendingMovement {
	return models.PendingMovement{
		MovementType: models.TipoIngreso,
		Amount:       decimal.NewFromInt(1500),
		Shift:        "M",
		ConceptID:    2,
		Details:      "venta mostrador",
		CreatedBy:    1,
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PendingMovement)
	}{
		{"zero amount", func(m *models.PendingMovement) { m.Amount = decimal.Zero }},
		{"negative amount", func(m *models.PendingMovement) { m.Amount = decimal.NewFromInt(-5) }},
		{"unknown type", func(m *models.PendingMovement) { m.MovementType = "Transferencia" }},
		{"blank shift", func(m *models.PendingMovement) { m.Shift = "  " }},
		{"missing concept", func(m *models.PendingMovement) { m.ConceptID = 0 }},
		{"missing creator", func(m *models.PendingMovement) { m.CreatedBy = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mov := validMovement()
			tt.mutate(&mov)
			assert.Error(t, Validate(mov))
		})
	}
}

func TestAddRejectsInvalidWithoutStaging(t *testing.T) {
	setupTestDB(t)

	mov := validMovement()
	mov.Amount = decimal.Zero
	_, err := Add(mov)
	require.Error(t, err)

	movs, err := List()
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	setupTestDB(t)

	first := validMovement()
	second := validMovement()
	second.MovementType = models.TipoEgreso
	second.Amount = decimal.NewFromInt(300)
	third := validMovement()
	third.Amount = decimal.NewFromInt(99)

	for _, mov := range []models.PendingMovement{first, second, third} {
		_, err := Add(mov)
		require.NoError(t, err)
	}

	movs, err := List()
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.True(t, movs[0].Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, models.TipoEgreso, movs[1].MovementType)
	assert.True(t, movs[2].Amount.Equal(decimal.NewFromInt(99)))
}

func TestAddStampsFecha(t *testing.T) {
	setupTestDB(t)

	staged, err := Add(validMovement())
	require.NoError(t, err)
	assert.NotEmpty(t, staged.Fecha)
}

func TestRemoveByPosition(t *testing.T) {
	setupTestDB(t)

	for i := 1; i <= 3; i++ {
		mov := validMovement()
		mov.Amount = decimal.NewFromInt(int64(i * 100))
		_, err := Add(mov)
		require.NoError(t, err)
	}

	removed, err := Remove(2)
	require.NoError(t, err)
	assert.True(t, removed.Amount.Equal(decimal.NewFromInt(200)))

	movs, err := List()
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, movs[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, movs[1].Amount.Equal(decimal.NewFromInt(300)))

	_, err = Remove(5)
	assert.Error(t, err)
}

func TestRenderMatchesList(t *testing.T) {
	setupTestDB(t)

	assert.Equal(t, "No hay movimientos pendientes.", Render(nil))

	mov := validMovement()
	mov.Fecha = "31/08/2026"
	_, err := Add(mov)
	require.NoError(t, err)

	movs, err := List()
	require.NoError(t, err)
	assert.Equal(t, "1. 31/08/2026 - $1.500,00 - Ingreso - Turno: M - Por: 1", Render(movs))
}

func newTestBackend(t *testing.T, handler http.Handler) (*session.Tracker, *api.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(&config.Config{ServerURL: srv.URL, Token: "tok"})
	return session.NewTracker(client), client
}

func TestSubmitBatchEmptyBufferSkipsRequest(t *testing.T) {
	setupTestDB(t)

	var requests atomic.Int64
	tracker, client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{}`))
	}))

	_, err := SubmitBatch(context.Background(), tracker, client, "M")
	assert.ErrorIs(t, err, ErrEmptyBuffer)
	assert.Zero(t, requests.Load())
}

func TestSubmitBatchBlockedByClosedSession(t *testing.T) {
	setupTestDB(t)
	_, err := Add(validMovement())
	require.NoError(t, err)

	tracker, client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/arco/estado" {
			w.Write([]byte(`{"arco_abierto":false}`))
			return
		}
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))

	_, err = SubmitBatch(context.Background(), tracker, client, "M")
	assert.ErrorIs(t, err, session.ErrArcoCerrado)

	movs, err := List()
	require.NoError(t, err)
	assert.Len(t, movs, 1, "a blocked submission must leave the buffer intact")
}

func TestSubmitBatchSendsOneRequestAndClears(t *testing.T) {
	setupTestDB(t)
	for i := 0; i < 3; i++ {
		_, err := Add(validMovement())
		require.NoError(t, err)
	}

	var batchRequests atomic.Int64
	var gotBody struct {
		Movements []models.PendingMovement `json:"movements"`
	}
	tracker, client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/arco/estado":
			w.Write([]byte(`{"arco_abierto":true,"arco":{"id":11,"turno":"M"}}`))
		case "/api/movements/batch":
			batchRequests.Add(1)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))

	n, err := SubmitBatch(context.Background(), tracker, client, "M")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int64(1), batchRequests.Load())

	require.Len(t, gotBody.Movements, 3)
	for _, mov := range gotBody.Movements {
		assert.Equal(t, uint(11), mov.ArcoID, "every entry is stamped with the open session id")
	}

	movs, err := List()
	require.NoError(t, err)
	assert.Empty(t, movs, "a successful submission clears the buffer")
}

func TestSubmitBatchFailureLeavesBufferIntact(t *testing.T) {
	setupTestDB(t)
	_, err := Add(validMovement())
	require.NoError(t, err)

	tracker, client := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/arco/estado" {
			w.Write([]byte(`{"arco_abierto":true,"arco":{"id":11,"turno":"M"}}`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream caído"}`))
	}))

	_, err = SubmitBatch(context.Background(), tracker, client, "M")
	require.Error(t, err)

	movs, err := List()
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}
