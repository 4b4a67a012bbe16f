package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/scheduler"
	"github.com/chris/arena-ledger/pkg/scheduler/mocks"
	"github.com/chris/arena-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withWallets appends wallets that bypassed the store's own consistency check.
type withWallets struct {
	*memory.Store
	extra []models.Wallet
}

func (w withWallets) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	wallets, err := w.Store.ListWallets(ctx)
	return append(wallets, w.extra...), err
}

func TestHandleRequest(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store := memory.New()

	store.PutTournament(models.Tournament{
		Id:                "stuck-result",
		Status:            models.LIVE,
		SettlementPending: models.SETTLE_RESULT,
		PendingResult:     &models.ResultIntent{RequestedAt: now.Add(-time.Hour)},
		UpdatedAt:         now.Add(-time.Hour),
	})
	store.PutTournament(models.Tournament{
		Id:                "fresh-result",
		Status:            models.LIVE,
		SettlementPending: models.SETTLE_RESULT,
		PendingResult:     &models.ResultIntent{RequestedAt: now.Add(-time.Minute)},
		UpdatedAt:         now.Add(-time.Hour),
	})
	store.PutTournament(models.Tournament{
		Id:                "stuck-refund",
		Status:            models.CANCELLED,
		SettlementPending: models.SETTLE_REFUND,
		UpdatedAt:         now.Add(-30 * time.Minute),
	})
	store.PutTournament(models.Tournament{Id: "done", Status: models.FINISHED, UpdatedAt: now.Add(-48 * time.Hour)})

	_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "u1", WalletBalance: 100, DepositedBalance: 100})
	require.NoError(t, err)

	sched := mocks.NewScheduler(t)
	sched.On("ScheduleRetry", mock.Anything, scheduler.RetryJob{Kind: models.SETTLE_RESULT, TournamentID: "stuck-result"}, time.Duration(0)).Return(nil)
	sched.On("ScheduleRetry", mock.Anything, scheduler.RetryJob{Kind: models.SETTLE_REFUND, TournamentID: "stuck-refund"}, time.Duration(0)).Return(assert.AnError)

	r := &reconciler{
		store:      withWallets{Store: store, extra: []models.Wallet{{UserId: "u2", WalletBalance: 90, DepositedBalance: 100}}},
		scheduler:  sched,
		stuckAfter: 20 * time.Minute,
		now:        func() time.Time { return now },
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	summary, err := r.HandleRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Requeued)
	assert.Equal(t, 1, summary.RequeueFailures)
	assert.Equal(t, 2, summary.WalletsAudited)
	assert.Equal(t, []string{"u2"}, summary.InconsistentUsers)
}
