package storage

import (
	"context"

	"github.com/chris/arena-ledger/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// FindPendingTransaction returns the pending transaction linked to a
	// request through its reference ID.
	FindPendingTransaction(ctx context.Context, referenceID string) (*models.Transaction, error)

	// ListTransactionsByUserID retrieves all transactions for a specific user, newest first.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)

	// ListRecentTransactions retrieves the most recent transactions across all users.
	ListRecentTransactions(ctx context.Context, limit int32) ([]models.Transaction, error)
}
