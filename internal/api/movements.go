package api

import (
	"context"
	"fmt"

	"github.com/cajafuerte/arqueo/internal/models"
)

// MovimientosArco lists the persisted movements of a session
// (GET /api/movimientos/arco/:id).
func (c *Client) MovimientosArco(ctx context.Context, arcoID uint) ([]models.Movement, error) {
	var resp struct {
		Movements []models.Movement `json:"movements"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/api/movimientos/arco/%d", arcoID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movements, nil
}

// DeleteMovimiento removes one persisted movement
// (DELETE /api/movimientos/:id).
func (c *Client) DeleteMovimiento(ctx context.Context, movementID uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/movimientos/%d", movementID))
}

// SubmitBatch sends the whole staging buffer as a single request
// (POST /api/movements/batch). There is no partial submission: the server
// gets every entry in one call or nothing.
func (c *Client) SubmitBatch(ctx context.Context, movements []models.PendingMovement) error {
	body := map[string]any{"movements": movements}
	return c.postJSON(ctx, "/api/movements/batch", body, nil)
}
