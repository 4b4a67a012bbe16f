package handlers

import (
	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/ledger"
	"github.com/chris/arena-ledger/pkg/handlers/lotteries"
	"github.com/chris/arena-ledger/pkg/handlers/requests"
	"github.com/chris/arena-ledger/pkg/handlers/tournaments"
	"github.com/chris/arena-ledger/pkg/handlers/wallets"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
)

// ApiHandler implements the generated server interface.
// Reads go straight to the store; every write goes through the settler.
type ApiHandler struct {
	*ledger.LedgerHandler
	*wallets.WalletsHandler
	*requests.RequestsHandler
	*tournaments.TournamentsHandler
	*lotteries.LotteriesHandler
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.ApiStore, settler settlement.Settler) *ApiHandler {
	return &ApiHandler{
		LedgerHandler:      ledger.NewLedgerHandler(store),
		WalletsHandler:     wallets.NewWalletsHandler(store, settler),
		RequestsHandler:    requests.NewRequestsHandler(settler),
		TournamentsHandler: tournaments.NewTournamentsHandler(settler),
		LotteriesHandler:   lotteries.NewLotteriesHandler(settler),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
