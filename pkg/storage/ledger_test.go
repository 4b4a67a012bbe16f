package storage

import (
	"testing"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		delta     int64
		applied   int64
		shortfall int64
	}{
		{"Credit", 10, 50, 50, 0},
		{"Covered Debit", 100, -40, -40, 0},
		{"Exact Debit", 40, -40, -40, 0},
		{"Overdrawn Debit", 40, -100, -40, 60},
		{"Empty Balance", 0, -25, 0, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, shortfall := Clamp(tt.balance, tt.delta)
			assert.Equal(t, tt.applied, applied)
			assert.Equal(t, tt.shortfall, shortfall)
			assert.GreaterOrEqual(t, tt.balance+applied, int64(0))
		})
	}
}

func TestCountsTowardWinnings(t *testing.T) {
	win := LedgerDelta{Balance: models.WINNING, Txn: &models.Transaction{Type: models.WIN}}
	assert.True(t, win.CountsTowardWinnings(100))
	assert.False(t, win.CountsTowardWinnings(-100))
	assert.False(t, win.CountsTowardWinnings(0))

	refund := LedgerDelta{Balance: models.WINNING, Txn: &models.Transaction{Type: models.REFUND}}
	assert.False(t, refund.CountsTowardWinnings(100))

	deposit := LedgerDelta{Balance: models.DEPOSITED, Txn: &models.Transaction{Type: models.DEPOSIT}}
	assert.False(t, deposit.CountsTowardWinnings(100))
}
