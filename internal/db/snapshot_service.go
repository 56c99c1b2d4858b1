package db

import (
	"github.com/cajafuerte/arqueo/internal/models"
)

// SaveSnapshot stores the last-known session state. A single row is kept;
// the snapshot is display-only fallback, never trusted for gating.
func SaveSnapshot(estado *models.Estado) error {
	snap := models.ArcoSnapshot{ID: 1}
	if estado != nil {
		snap.Abierto = estado.ArcoAbierto
		if estado.Arco != nil {
			snap.ArcoID = estado.Arco.ID
			snap.Turno = estado.Arco.Turno
		}
	}
	return DB.Save(&snap).Error
}

// LastSnapshot returns the cached session state, or nil when none was ever
// recorded.
func LastSnapshot() (*models.ArcoSnapshot, error) {
	var snap models.ArcoSnapshot
	err := DB.First(&snap, 1).Error
	if err != nil {
		return nil, nil // no snapshot yet is not an error
	}
	return &snap, nil
}
