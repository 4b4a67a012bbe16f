package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Not Found", &settlement.Error{Code: settlement.NOT_FOUND, Message: "tournament t1 not found"}, http.StatusNotFound},
		{"Invalid State", &settlement.Error{Code: settlement.INVALID_STATE, Message: "already approved"}, http.StatusConflict},
		{"Validation", &settlement.Error{Code: settlement.VALIDATION, Message: "bad"}, http.StatusBadRequest},
		{"Partial Failure", &settlement.Error{Code: settlement.PARTIAL_FAILURE, Message: "1 of 3 participants failed"}, http.StatusMultiStatus},
		{"Version Conflict", fmt.Errorf("failed to settle: %w", storage.ErrVersionConflict), http.StatusConflict},
		{"Storage Not Found", storage.ErrNotFound, http.StatusNotFound},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	t.Run("Classified", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/deposits/d1/approve", nil)

		Error(rr, req, &settlement.Error{Code: settlement.INVALID_STATE, Message: "deposit request d1 is approved"})

		assert.Equal(t, http.StatusConflict, rr.Code)
		var body api.Error
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_STATE", body.Code)
		assert.Equal(t, "deposit request d1 is approved", body.Message)
	})

	t.Run("Internal Detail Is Hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/wallets/u1", nil)

		Error(rr, req, fmt.Errorf("dynamodb: throttled"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "throttled")
	})
}

func TestReport(t *testing.T) {
	report := &settlement.BulkReport{
		TournamentID: "t1",
		Succeeded:    2,
		Failed:       1,
		Failures:     []settlement.ParticipantFailure{{ParticipantID: "p2", Error: "boom"}},
	}
	partial := &settlement.Error{Code: settlement.PARTIAL_FAILURE, Message: "1 of 3 participants failed"}

	rr := httptest.NewRecorder()
	Report(rr, httptest.NewRequest(http.MethodPost, "/tournaments/t1/cancel", nil), report, partial)

	assert.Equal(t, http.StatusMultiStatus, rr.Code)
	var body api.BulkReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Failed)
	require.NotNil(t, body.Failures)
	assert.Equal(t, "p2", (*body.Failures)[0].ParticipantId)
}
