package settlement

import (
	"context"
	"fmt"
	"strings"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

// Operation is the direction of a manual adjustment.
type Operation string

const (
	CREDIT Operation = "deposit"
	DEBIT  Operation = "withdraw"
)

// Adjustment is an admin-initiated change to one sub-balance.
type Adjustment struct {
	UserID     string
	WalletType models.SubBalance
	Operation  Operation
	Amount     int64
	Note       string
}

// AdjustFunds credits or debits one sub-balance. Debits floor at zero; the
// uncollected part is reported as the result's shortfall.
func (s *Service) AdjustFunds(ctx context.Context, adj Adjustment) (*storage.LedgerResult, error) {
	if adj.Amount <= 0 {
		return nil, validation("amount must be positive")
	}
	if adj.Amount > models.MaxAmount {
		return nil, validation("amount exceeds the maximum of %s", models.FormatAmount(models.MaxAmount))
	}
	if !adj.WalletType.Valid() {
		return nil, validation("unknown wallet type %q", adj.WalletType)
	}

	var (
		delta int64
		typ   models.TransactionType
		verb  string
	)
	switch adj.Operation {
	case CREDIT:
		delta, typ, verb = adj.Amount, models.MANUAL_CREDIT, "added"
	case DEBIT:
		delta, typ, verb = -adj.Amount, models.MANUAL_DEBIT, "removed"
	default:
		return nil, validation("unknown operation %q", adj.Operation)
	}

	wallet, err := s.store.GetWallet(ctx, adj.UserID)
	if err != nil {
		return nil, classify(err, "wallet for user "+adj.UserID)
	}

	note := strings.TrimSpace(adj.Note)
	description := fmt.Sprintf("Admin %s %s balance", verb, balanceLabel(adj.WalletType))
	if note != "" {
		description += ": " + note
	}

	res, err := s.apply(ctx, storage.LedgerDelta{
		UserID:  adj.UserID,
		Balance: adj.WalletType,
		Delta:   delta,
		Txn: &models.Transaction{
			UserName:    wallet.DisplayName,
			UserEmail:   wallet.Email,
			Type:        typ,
			Amount:      adj.Amount,
			Description: description,
			WalletType:  adj.WalletType,
			Note:        note,
		},
	})
	if err != nil {
		return nil, ledgerError(err, adj.UserID, "adjustment")
	}
	return res, nil
}

func balanceLabel(b models.SubBalance) string {
	s := string(b)
	return strings.ToUpper(s[:1]) + s[1:]
}
