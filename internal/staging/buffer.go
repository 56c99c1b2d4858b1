// Package staging implements the pending-movement buffer: the ordered list
// of movements the user has entered but not yet submitted. Entries persist
// in the local store between invocations and are sent to the backend as a
// single batch.
package staging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cajafuerte/arqueo/internal/api"
	"github.com/cajafuerte/arqueo/internal/db"
	"github.com/cajafuerte/arqueo/internal/models"
	"github.com/cajafuerte/arqueo/internal/session"
)

// ErrEmptyBuffer rejects a batch submission with nothing staged. The check
// is local; no request is issued.
var ErrEmptyBuffer = errors.New("no hay movimientos pendientes para enviar")

// Validate checks a movement before it may enter the buffer. A violation
// rejects the whole entry; nothing is partially staged.
func Validate(mov models.PendingMovement) error {
	switch {
	case !mov.Amount.IsPositive():
		return fmt.Errorf("el monto debe ser mayor a cero")
	case mov.MovementType != models.TipoIngreso && mov.MovementType != models.TipoEgreso:
		return fmt.Errorf("tipo de movimiento inválido %q", mov.MovementType)
	case strings.TrimSpace(mov.Shift) == "":
		return fmt.Errorf("el turno es requerido")
	case mov.ConceptID == 0:
		return fmt.Errorf("el concepto es requerido")
	case mov.CreatedBy == 0:
		return fmt.Errorf("el usuario creador es requerido")
	}
	return nil
}

// Add validates and appends a movement to the buffer, in insertion order.
func Add(mov models.PendingMovement) (*models.PendingMovement, error) {
	if err := Validate(mov); err != nil {
		return nil, err
	}
	if mov.Fecha == "" {
		mov.Fecha = time.Now().Format("02/01/2006")
	}
	return db.StagePending(mov)
}

// List returns the buffer in insertion order. Every rendering of the
// pending list derives from this single source.
func List() ([]models.PendingMovement, error) {
	return db.PendingMovements()
}

// Remove drops the entry at the given 1-based position.
func Remove(position int) (*models.PendingMovement, error) {
	return db.RemovePending(position)
}

// Render produces the canonical text listing of the buffer, one line per
// entry in insertion order.
func Render(movs []models.PendingMovement) string {
	if len(movs) == 0 {
		return "No hay movimientos pendientes."
	}
	var b strings.Builder
	for i, mov := range movs {
		fmt.Fprintf(&b, "%d. %s - %s - %s - Turno: %s - Por: %d\n",
			i+1,
			mov.Fecha,
			models.FormatARS(mov.Amount),
			mov.MovementType,
			mov.Shift,
			mov.CreatedBy,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SubmitBatch sends the whole buffer as one request. The session state is
// re-checked immediately before sending; a closed or unknown session blocks
// the submission. On success the buffer is cleared; on failure it is left
// intact so the user can retry.
func SubmitBatch(ctx context.Context, tracker *session.Tracker, client *api.Client, turno string) (int, error) {
	movs, err := List()
	if err != nil {
		return 0, err
	}
	if len(movs) == 0 {
		return 0, ErrEmptyBuffer
	}

	arco, err := tracker.RequireOpen(ctx, turno)
	if err != nil {
		return 0, err
	}
	for i := range movs {
		movs[i].ArcoID = arco.ID
	}

	if err := client.SubmitBatch(ctx, movs); err != nil {
		return 0, err
	}
	if err := db.ClearPending(); err != nil {
		return len(movs), fmt.Errorf("movimientos enviados pero el buffer local no pudo limpiarse: %w", err)
	}
	return len(movs), nil
}
