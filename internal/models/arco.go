package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift codes used by the backend (turno).
const (
	TurnoManana = "M"
	TurnoTarde  = "T"
	TurnoNoche  = "N"
)

// Arco is a cash-drawer session as the backend reports it. The server owns
// it; the client only keeps a read-mostly snapshot.
type Arco struct {
	ID    uint   `json:"id"`
	Turno string `json:"turno"`
}

// Estado is the payload of GET /arco/estado and GET /api/arco-estado.
type Estado struct {
	ArcoAbierto bool   `json:"arco_abierto"`
	Arco        *Arco  `json:"arco,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Abierto reports whether the estado describes a usable open session.
func (e *Estado) Abierto() bool {
	return e != nil && e.ArcoAbierto && e.Arco != nil && e.Arco.ID > 0
}

// Saldo is the payload of GET /api/saldo-ultimo-arco.
type Saldo struct {
	SaldoTotal    decimal.Decimal `json:"saldo_total"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
}

// ArcoSnapshot is the locally cached last-known session state, shown by
// `arqueo status` when the backend cannot be reached. Never authoritative.
type ArcoSnapshot struct {
	ID        uint      `gorm:"primarykey"`
	UpdatedAt time.Time

	ArcoID  uint
	Turno   string
	Abierto bool
}
