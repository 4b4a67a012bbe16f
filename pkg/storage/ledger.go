package storage

import (
	"context"

	"github.com/chris/arena-ledger/pkg/models"
)

// LedgerDelta is one atomic wallet movement. Delta is signed; a debit larger
// than the sub-balance is clamped so the balance floors at zero. Txn, when set,
// is inserted in the same write with BalanceAfter and Shortfall filled in.
// Guards commit with it or not at all.
type LedgerDelta struct {
	UserID  string
	Balance models.SubBalance
	Delta   int64
	Txn     *models.Transaction
	Guards  []Guard
}

// LedgerResult describes what a committed LedgerDelta actually did.
type LedgerResult struct {
	// Applied is the clamped delta that hit the wallet.
	Applied int64
	// Shortfall is the part of a debit that could not be collected.
	Shortfall int64
	Wallet    *models.Wallet
	Txn       *models.Transaction
}

// CountsTowardWinnings reports whether a delta grows the lifetime winnings
// counter. Refunds restore money the user already earned.
func (d LedgerDelta) CountsTowardWinnings(applied int64) bool {
	if applied <= 0 || d.Balance != models.WINNING {
		return false
	}
	return d.Txn == nil || d.Txn.Type != models.REFUND
}

// Clamp returns the delta that can be applied to a balance without taking it
// below zero, and the uncollected remainder.
func Clamp(balance, delta int64) (applied, shortfall int64) {
	if balance+delta < 0 {
		return -balance, -(delta + balance)
	}
	return delta, 0
}

// LedgerWriter is the only path through which balances change.
type LedgerWriter interface {
	// ApplyLedgerDelta adjusts one sub-balance and the wallet total by the same
	// clamped amount, inserts the transaction and commits the guards atomically.
	// Returns ErrNotFound for a missing wallet, ErrConditionFailed when a guard or
	// the insert fails, and ErrVersionConflict when retries are exhausted.
	ApplyLedgerDelta(ctx context.Context, delta LedgerDelta) (*LedgerResult, error)

	// CommitGuards commits state transitions that move no money, atomically.
	CommitGuards(ctx context.Context, guards ...Guard) error
}
