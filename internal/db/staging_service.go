package db

import (
	"fmt"

	"github.com/cajafuerte/arqueo/internal/models"
)

// StagePending appends a movement to the staging buffer. Validation happens
// in the staging package before this point; the row id preserves insertion
// order.
func StagePending(mov models.PendingMovement) (*models.PendingMovement, error) {
	if err := DB.Create(&mov).Error; err != nil {
		return nil, fmt.Errorf("failed to stage movement: %w", err)
	}
	return &mov, nil
}

// PendingMovements returns the buffer in insertion order.
func PendingMovements() ([]models.PendingMovement, error) {
	var movs []models.PendingMovement
	if err := DB.Order("id ASC").Find(&movs).Error; err != nil {
		return nil, err
	}
	return movs, nil
}

// RemovePending drops the entry at the given 1-based position in the
// rendered list. No undo.
func RemovePending(position int) (*models.PendingMovement, error) {
	movs, err := PendingMovements()
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(movs) {
		return nil, fmt.Errorf("no staged movement at position %d", position)
	}

	mov := movs[position-1]
	if err := DB.Delete(&models.PendingMovement{}, mov.ID).Error; err != nil {
		return nil, err
	}
	return &mov, nil
}

// ClearPending empties the buffer after a successful batch submission.
func ClearPending() error {
	return DB.Where("1 = 1").Delete(&models.PendingMovement{}).Error
}

// CountPending returns the number of staged movements.
func CountPending() (int64, error) {
	var n int64
	err := DB.Model(&models.PendingMovement{}).Count(&n).Error
	return n, err
}
