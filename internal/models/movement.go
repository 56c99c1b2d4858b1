package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types as the backend spells them.
const (
	TipoIngreso = "Ingreso"
	TipoEgreso  = "Egreso"
)

// Movement is a persisted movement as returned by
// GET /api/movimientos/arco/:id. Read-only on the client side except for
// delete-by-id.
type Movement struct {
	MovementID   uint            `json:"movement_id"`
	MovementType string          `json:"movement_type"`
	Amount       decimal.Decimal `json:"amount"`
	MovementDate time.Time       `json:"movement_date"`
	Details      string          `json:"details"`
	ConceptID    uint            `json:"concept_id"`
}

// PendingMovement is a staged movement the user has entered but not yet
// submitted. It lives in the local store until the whole buffer is sent as
// one batch; the row id doubles as insertion order.
type PendingMovement struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`

	MovementType string          `gorm:"not null" json:"movement_type"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Shift        string          `gorm:"not null" json:"shift"`
	ConceptID    uint            `gorm:"not null" json:"concept_id"`
	Details      string          `json:"details"`
	CreatedBy    uint            `gorm:"not null" json:"created_by"`

	// Stamped when the batch is submitted, after the session re-check.
	ArcoID uint   `json:"arco_id"`
	Fecha  string `json:"fecha"`
}
