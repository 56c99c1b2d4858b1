package db

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cajafuerte/arqueo/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Open(":memory:"))
	t.Cleanup(func() { Close() })
}

func stage(t *testing.T, amount int64) *models.PendingMovement {
	t.Helper()
	mov, err := StagePending(models.PendingMovement{
		MovementType: models.TipoIngreso,
		Amount:       decimal.NewFromInt(amount),
		Shift:        "M",
		ConceptID:    1,
		CreatedBy:    1,
	})
	require.NoError(t, err)
	return mov
}

func TestStagePendingAssignsIncreasingIDs(t *testing.T) {
	setupTestDB(t)

	first := stage(t, 100)
	second := stage(t, 200)
	assert.Greater(t, second.ID, first.ID)

	movs, err := PendingMovements()
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.True(t, movs[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, movs[1].Amount.Equal(decimal.NewFromInt(200)))
}

func TestRemovePendingBounds(t *testing.T) {
	setupTestDB(t)
	stage(t, 100)

	_, err := RemovePending(0)
	assert.Error(t, err)
	_, err = RemovePending(2)
	assert.Error(t, err)

	removed, err := RemovePending(1)
	require.NoError(t, err)
	assert.True(t, removed.Amount.Equal(decimal.NewFromInt(100)))

	n, err := CountPending()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClearPending(t *testing.T) {
	setupTestDB(t)
	stage(t, 100)
	stage(t, 200)

	require.NoError(t, ClearPending())

	n, err := CountPending()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSnapshotRoundTrip(t *testing.T) {
	setupTestDB(t)

	snap, err := LastSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap, "no snapshot recorded yet")

	estado := &models.Estado{
		ArcoAbierto: true,
		Arco:        &models.Arco{ID: 7, Turno: "T"},
	}
	require.NoError(t, SaveSnapshot(estado))

	snap, err = LastSnapshot()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, uint(7), snap.ArcoID)
	assert.Equal(t, "T", snap.Turno)
	assert.True(t, snap.Abierto)

	// A later save overwrites the single row.
	require.NoError(t, SaveSnapshot(&models.Estado{ArcoAbierto: false}))
	snap, err = LastSnapshot()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.False(t, snap.Abierto)
}
