package ledger

import (
	"fmt"
	"net/http"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/respond"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// LedgerHandler serves the cross-user transaction feed.
type LedgerHandler struct {
	Store storage.TransactionReader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.TransactionReader) *LedgerHandler {
	return &LedgerHandler{Store: store}
}

func (h *LedgerHandler) ListRecentTransactions(w http.ResponseWriter, r *http.Request, params api.ListRecentTransactionsParams) {
	limit := int32(defaultLimit)
	if params.Limit != nil {
		if *params.Limit < 1 || *params.Limit > maxLimit {
			respond.BadRequest(w, fmt.Sprintf("limit must be between 1 and %d", maxLimit))
			return
		}
		limit = int32(*params.Limit)
	}

	txs, err := h.Store.ListRecentTransactions(r.Context(), limit)
	if err != nil {
		respond.Error(w, r, fmt.Errorf("failed to list recent transactions: %w", err))
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTransactions(txs))
}
