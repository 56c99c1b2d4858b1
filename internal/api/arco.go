package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/models"
)

// Estado queries the session state for a shift (GET /arco/estado?turno=).
func (c *Client) Estado(ctx context.Context, turno string) (*models.Estado, error) {
	query := url.Values{}
	if turno != "" {
		query.Set("turno", turno)
	}
	var estado models.Estado
	if err := c.getJSON(ctx, "/arco/estado", query, &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

// EstadoActual queries the state of the last session regardless of shift
// (GET /api/arco-estado).
func (c *Client) EstadoActual(ctx context.Context) (*models.Estado, error) {
	var estado models.Estado
	if err := c.getJSON(ctx, "/api/arco-estado", nil, &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

// Abrir opens a new session for the shift (POST /arco/abrir, JSON body).
func (c *Client) Abrir(ctx context.Context, turno string) error {
	return c.postJSON(ctx, "/arco/abrir", map[string]string{"turno": turno}, nil)
}

// AbrirAvanzado opens a new session through the advanced endpoint
// (POST /arco/abrir-avanzado, form-encoded) and returns the new session id.
func (c *Client) AbrirAvanzado(ctx context.Context, turno string) (uint, error) {
	form := url.Values{"turno": {turno}}
	var resp struct {
		ID uint `json:"id"`
	}
	if err := c.postForm(ctx, "/arco/abrir-avanzado", form, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Cerrar closes a session, optionally recording a cash withdrawal in the
// same request so the server creates both atomically
// (POST /arco/cerrar, form-encoded).
func (c *Client) Cerrar(ctx context.Context, arcoID uint, retiro decimal.Decimal) error {
	form := url.Values{"arco_id": {strconv.FormatUint(uint64(arcoID), 10)}}
	if retiro.IsPositive() {
		form.Set("retiro_amount", retiro.String())
	}
	return c.postForm(ctx, "/arco/cerrar", form, nil)
}

// SaldoUltimoArco fetches the running balance of the latest session
// (GET /api/saldo-ultimo-arco).
func (c *Client) SaldoUltimoArco(ctx context.Context) (*models.Saldo, error) {
	var saldo models.Saldo
	if err := c.getJSON(ctx, "/api/saldo-ultimo-arco", nil, &saldo); err != nil {
		return nil, err
	}
	return &saldo, nil
}
