// Package session holds the client-side cash-session state tracker. The
// backend owns the session; the tracker keeps a read-mostly snapshot and
// re-queries it before every mutating action instead of trusting the cache.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/models"
)

// ErrArcoCerrado blocks session-gated actions while no session is open.
var ErrArcoCerrado = errors.New("debe abrir el arco para operar")

// Tracker synchronizes the locally cached session state against the backend.
type Tracker struct {
	client  *api.Client
	current *models.Estado
}

// NewTracker builds a tracker on top of an API client.
func NewTracker(client *api.Client) *Tracker {
	return &Tracker{client: client}
}

// Status fetches the session state for a shift. Any failure (transport or
// non-2xx) yields nil: an unknown session is treated as closed.
func (t *Tracker) Status(ctx context.Context, turno string) *models.Estado {
	estado, err := t.client.Estado(ctx, turno)
	if err != nil {
		t.current = nil
		return nil
	}
	t.current = estado
	return estado
}

// Current returns the last fetched state, for display only. Gating always
// goes through RequireOpen.
func (t *Tracker) Current() *models.Estado {
	return t.current
}

// RequireOpen re-queries the session state immediately before a mutating
// action and returns the open session, or ErrArcoCerrado. This guards
// against stale local state; the server still enforces the invariant.
func (t *Tracker) RequireOpen(ctx context.Context, turno string) (*models.Arco, error) {
	estado := t.Status(ctx, turno)
	if !estado.Abierto() {
		return nil, ErrArcoCerrado
	}
	return estado.Arco, nil
}

// Open requests a new session for the shift and refreshes the local state.
// Server-reported errors surface verbatim.
func (t *Tracker) Open(ctx context.Context, turno string) error {
	if err := t.client.Abrir(ctx, turno); err != nil {
		return err
	}
	t.Status(ctx, turno)
	return nil
}

// OpenAdvanced requests a new session through the advanced endpoint and
// returns the created session id.
func (t *Tracker) OpenAdvanced(ctx context.Context, turno string) (uint, error) {
	id, err := t.client.AbrirAvanzado(ctx, turno)
	if err != nil {
		return 0, err
	}
	t.Status(ctx, turno)
	return id, nil
}

// Close terminates the session, optionally recording a withdrawal in the
// same request. On success the cached session id is dropped and the balance
// is re-queried; a failed balance refresh is tolerated (the close already
// happened server-side).
func (t *Tracker) Close(ctx context.Context, arcoID uint, retiro decimal.Decimal) (*models.Saldo, error) {
	if arcoID == 0 {
		return nil, fmt.Errorf("no se puede cerrar el arco: ID desconocido")
	}
	if err := t.client.Cerrar(ctx, arcoID, retiro); err != nil {
		return nil, err
	}
	t.current = nil

	saldo, err := t.client.SaldoUltimoArco(ctx)
	if err != nil {
		return nil, nil
	}
	return saldo, nil
}

// Balance fetches the running balance of the latest session.
func (t *Tracker) Balance(ctx context.Context) (*models.Saldo, error) {
	return t.client.SaldoUltimoArco(ctx)
}
