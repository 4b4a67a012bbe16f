package lotteries

import (
	"net/http"
	"strings"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/respond"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/settlement"
)

// LotteriesHandler draws lottery winners.
type LotteriesHandler struct {
	Settler settlement.Settler
}

// NewLotteriesHandler creates a new LotteriesHandler.
func NewLotteriesHandler(settler settlement.Settler) *LotteriesHandler {
	return &LotteriesHandler{Settler: settler}
}

func (h *LotteriesHandler) SelectLotteryWinner(w http.ResponseWriter, r *http.Request, lotteryId string) {
	var body api.SelectLotteryWinnerJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}
	userID := strings.TrimSpace(body.UserId)
	if userID == "" {
		respond.BadRequest(w, "userId is required")
		return
	}

	lottery, err := h.Settler.SelectWinner(r.Context(), lotteryId, userID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiLottery(lottery))
}
