package requests_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/requests"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/settlement/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		approvedAt := time.Now()
		mockSettler := mocks.NewSettler(t)
		mockSettler.On("ApproveDeposit", mock.Anything, "d1").Return(&models.DepositRequest{
			Id: "d1", UserId: "u1", Amount: 50000, UTR: "UTR123", Status: models.DEPOSIT_APPROVED, ApprovedAt: &approvedAt,
		}, nil)

		h := requests.NewRequestsHandler(mockSettler)

		req := httptest.NewRequest(http.MethodPost, "/deposits/d1/approve", nil)
		rr := httptest.NewRecorder()

		h.ApproveDeposit(rr, req, "d1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned api.DepositRequest
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.DepositRequestStatusApproved, returned.Status)
		assert.Equal(t, "500", returned.Amount.String())
	})

	t.Run("Already Settled", func(t *testing.T) {
		mockSettler := mocks.NewSettler(t)
		mockSettler.On("ApproveDeposit", mock.Anything, "d1").
			Return(nil, &settlement.Error{Code: settlement.INVALID_STATE, Message: "deposit request d1 is approved"})

		h := requests.NewRequestsHandler(mockSettler)

		req := httptest.NewRequest(http.MethodPost, "/deposits/d1/approve", nil)
		rr := httptest.NewRecorder()

		h.ApproveDeposit(rr, req, "d1")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRejectDeposit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSettler := mocks.NewSettler(t)
		mockSettler.On("RejectDeposit", mock.Anything, "d1", "UTR mismatch").Return(&models.DepositRequest{
			Id: "d1", Status: models.DEPOSIT_REJECTED, RejectReason: "UTR mismatch",
		}, nil)

		h := requests.NewRequestsHandler(mockSettler)

		req := httptest.NewRequest(http.MethodPost, "/deposits/d1/reject", strings.NewReader(`{"reason":"UTR mismatch"}`))
		rr := httptest.NewRecorder()

		h.RejectDeposit(rr, req, "d1")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "UTR mismatch")
	})

	t.Run("Invalid Body", func(t *testing.T) {
		h := requests.NewRequestsHandler(mocks.NewSettler(t))

		req := httptest.NewRequest(http.MethodPost, "/deposits/d1/reject", strings.NewReader(`not json`))
		rr := httptest.NewRecorder()

		h.RejectDeposit(rr, req, "d1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	mockSettler := mocks.NewSettler(t)
	mockSettler.On("ApproveWithdrawal", mock.Anything, "w404").
		Return(nil, &settlement.Error{Code: settlement.NOT_FOUND, Message: "withdrawal request w404 not found"})

	h := requests.NewRequestsHandler(mockSettler)

	req := httptest.NewRequest(http.MethodPost, "/withdrawals/w404/approve", nil)
	rr := httptest.NewRecorder()

	h.ApproveWithdrawal(rr, req, "w404")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRejectWithdrawal(t *testing.T) {
	mockSettler := mocks.NewSettler(t)
	mockSettler.On("RejectWithdrawal", mock.Anything, "w1", "bank details invalid").Return(&models.WithdrawalRequest{
		Id: "w1", Amount: 20000, Status: models.WITHDRAWAL_REJECTED, RejectReason: "bank details invalid",
	}, nil)

	h := requests.NewRequestsHandler(mockSettler)

	req := httptest.NewRequest(http.MethodPost, "/withdrawals/w1/reject", strings.NewReader(`{"reason":"bank details invalid"}`))
	rr := httptest.NewRecorder()

	h.RejectWithdrawal(rr, req, "w1")

	assert.Equal(t, http.StatusOK, rr.Code)
	var returned api.WithdrawalRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
	assert.Equal(t, api.WithdrawalRequestStatusRejected, returned.Status)
}
