package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/config"
)

func testTracker(t *testing.T, handler http.Handler) *Tracker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTracker(api.NewClient(&config.Config{ServerURL: srv.URL, Token: "tok"}))
}

func TestStatusTreatsFailureAsClosed(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	estado := tracker.Status(context.Background(), "M")
	assert.Nil(t, estado)
	assert.Nil(t, tracker.Current())
	assert.False(t, estado.Abierto())
}

func TestStatusCachesOpenSession(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"arco_abierto":true,"arco":{"id":3,"turno":"M"}}`))
	}))

	estado := tracker.Status(context.Background(), "M")
	require.NotNil(t, estado)
	assert.True(t, estado.Abierto())
	assert.Equal(t, estado, tracker.Current())
}

func TestRequireOpenRefusesClosedSession(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"arco_abierto":false}`))
	}))

	arco, err := tracker.RequireOpen(context.Background(), "M")
	assert.Nil(t, arco)
	assert.ErrorIs(t, err, ErrArcoCerrado)
}

func TestRequireOpenRefetchesBeforeAnswering(t *testing.T) {
	open := true
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if open {
			w.Write([]byte(`{"arco_abierto":true,"arco":{"id":5,"turno":"T"}}`))
			return
		}
		w.Write([]byte(`{"arco_abierto":false}`))
	}))

	arco, err := tracker.RequireOpen(context.Background(), "T")
	require.NoError(t, err)
	assert.Equal(t, uint(5), arco.ID)

	// Session closes elsewhere; the cached state must not satisfy the gate.
	open = false
	_, err = tracker.RequireOpen(context.Background(), "T")
	assert.ErrorIs(t, err, ErrArcoCerrado)
	assert.Nil(t, tracker.Current())
}

func TestOpenSurfacesServerMessageVerbatim(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Ya existe un arco abierto para el turno M"}`))
	}))

	err := tracker.Open(context.Background(), "M")
	require.Error(t, err)
	assert.Equal(t, "Ya existe un arco abierto para el turno M", err.Error())
}

func TestCloseRejectsUnknownID(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an unknown session id")
	}))

	_, err := tracker.Close(context.Background(), 0, decimal.Zero)
	assert.Error(t, err)
}

func TestCloseClearsCacheAndReturnsBalance(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/arco/estado":
			w.Write([]byte(`{"arco_abierto":true,"arco":{"id":8,"turno":"N"}}`))
		case "/arco/cerrar":
			w.Write([]byte(`{}`))
		case "/api/saldo-ultimo-arco":
			w.Write([]byte(`{"saldo_total":"9800","total_ingresos":"10000","total_egresos":"200","saldo_inicial":"0"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	tracker.Status(context.Background(), "N")
	require.NotNil(t, tracker.Current())

	saldo, err := tracker.Close(context.Background(), 8, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Nil(t, tracker.Current())
	require.NotNil(t, saldo)
	assert.True(t, saldo.SaldoTotal.Equal(decimal.NewFromInt(9800)))
}

func TestCloseToleratesFailedBalanceRefresh(t *testing.T) {
	tracker := testTracker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/arco/cerrar" {
			w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	saldo, err := tracker.Close(context.Background(), 8, decimal.Zero)
	assert.NoError(t, err)
	assert.Nil(t, saldo)
}
