package requests

import (
	"net/http"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/respond"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/settlement"
)

// RequestsHandler settles deposit and withdrawal requests.
type RequestsHandler struct {
	Settler settlement.Settler
}

// NewRequestsHandler creates a new RequestsHandler.
func NewRequestsHandler(settler settlement.Settler) *RequestsHandler {
	return &RequestsHandler{Settler: settler}
}

func (h *RequestsHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request, requestId string) {
	req, err := h.Settler.ApproveDeposit(r.Context(), requestId)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDepositRequest(req))
}

func (h *RequestsHandler) RejectDeposit(w http.ResponseWriter, r *http.Request, requestId string) {
	var body api.RejectDepositJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	req, err := h.Settler.RejectDeposit(r.Context(), requestId, body.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDepositRequest(req))
}

func (h *RequestsHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request, requestId string) {
	req, err := h.Settler.ApproveWithdrawal(r.Context(), requestId)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiWithdrawalRequest(req))
}

// RejectWithdrawal rejects the request and refunds the held amount.
func (h *RequestsHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request, requestId string) {
	var body api.RejectWithdrawalJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	req, err := h.Settler.RejectWithdrawal(r.Context(), requestId, body.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiWithdrawalRequest(req))
}
