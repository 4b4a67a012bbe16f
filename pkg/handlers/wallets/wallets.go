package wallets

import (
	"fmt"
	"net/http"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/respond"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store   storage.ApiStore
	Settler settlement.Settler
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.ApiStore, settler settlement.Settler) *WalletsHandler {
	return &WalletsHandler{Store: store, Settler: settler}
}

// GetWallet handles the logic for retrieving a user's wallet.
func (h *WalletsHandler) GetWallet(w http.ResponseWriter, r *http.Request, userId string) {
	wallet, err := h.Store.GetWallet(r.Context(), userId)
	if err != nil {
		respond.Error(w, r, fmt.Errorf("wallet for user %s: %w", userId, err))
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWallet(wallet))
}

// ListUserTransactions returns a user's ledger, newest first.
func (h *WalletsHandler) ListUserTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	if _, err := h.Store.GetWallet(r.Context(), userId); err != nil {
		respond.Error(w, r, fmt.Errorf("wallet for user %s: %w", userId, err))
		return
	}

	txs, err := h.Store.ListTransactionsByUserID(r.Context(), userId)
	if err != nil {
		respond.Error(w, r, fmt.Errorf("failed to list transactions for user %s: %w", userId, err))
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiTransactions(txs))
}

// AdjustFunds handles a manual credit or debit of one sub-balance.
func (h *WalletsHandler) AdjustFunds(w http.ResponseWriter, r *http.Request, userId string) {
	var body api.AdjustFundsJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	adj, err := mapping.ToDomainAdjustment(userId, &body)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	res, err := h.Settler.AdjustFunds(r.Context(), adj)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiAdjustmentResult(res))
}
