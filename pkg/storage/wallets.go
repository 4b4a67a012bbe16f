package storage

import (
	"context"

	"github.com/chris/arena-ledger/pkg/models"
)

// WalletReader reads wallet balances.
type WalletReader interface {
	// GetWallet retrieves a user's wallet by their user ID.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)
}

// WalletStore defines the interface for managing wallets.
// Balances are never written through it; see LedgerWriter.
type WalletStore interface {
	WalletReader

	// CreateWallet creates a new wallet for a user.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// ListWallets retrieves all wallets from the storage.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}
