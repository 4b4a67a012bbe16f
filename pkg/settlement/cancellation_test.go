package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Refunds Every Participant Once", func(t *testing.T) {
		f := newFixture(t, nil)
		seedPlayers(t, f, "u1", "u2", "u3")
		f.store.PutTournament(soloTournament())

		report, err := f.svc.CancelMatch(ctx, "t1")

		require.NoError(t, err)
		assert.Equal(t, 3, report.Succeeded)
		var total int64
		for _, u := range []string{"u1", "u2", "u3"} {
			w := f.wallet(t, u)
			assert.Equal(t, int64(50), w.DepositedBalance)
			total += w.WalletBalance
		}
		assert.Equal(t, int64(150), total)

		tr := f.tournament(t, "t1")
		assert.Equal(t, models.CANCELLED, tr.Status)
		assert.NotNil(t, tr.CancelledAt)
		assert.Empty(t, tr.SettlementPending)
		for _, p := range tr.Participants {
			assert.NotNil(t, p.RefundedAt)
		}

		refunds := ofType(f.transactions(t, "u1"), models.REFUND)
		require.Len(t, refunds, 1)
		assert.Equal(t, refundTransactionID("t1", "p1"), refunds[0].Id)
		assert.Equal(t, "Match Cancelled Refund - Sunday Solo", refunds[0].Description)

		_, err = f.svc.CancelMatch(ctx, "t1")
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Equal(t, int64(50), f.wallet(t, "u1").WalletBalance)
	})

	t.Run("Finished Tournament", func(t *testing.T) {
		f := newFixture(t, nil)
		tr := soloTournament()
		tr.Status = models.FINISHED
		f.store.PutTournament(tr)

		_, err := f.svc.CancelMatch(ctx, "t1")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Free Entry", func(t *testing.T) {
		f := newFixture(t, nil)
		seedPlayers(t, f, "u1", "u2", "u3")
		tr := soloTournament()
		tr.EntryFee = 0
		f.store.PutTournament(tr)

		report, err := f.svc.CancelMatch(ctx, "t1")

		require.NoError(t, err)
		assert.Equal(t, 3, report.Skipped)
		assert.Equal(t, models.CANCELLED, f.tournament(t, "t1").Status)
		assert.Empty(t, f.transactions(t, "u1"))
	})

	t.Run("Interrupted Refunds Resume Without Double Refund", func(t *testing.T) {
		f := newFixture(t, nil)
		seedPlayers(t, f, "u1", "u2", "u3")
		f.store.PutTournament(soloTournament())

		failing := true
		f.store.InjectFault = func(d storage.LedgerDelta) error {
			if failing && d.UserID == "u3" {
				return errors.New("connection reset")
			}
			return nil
		}

		report, err := f.svc.CancelMatch(ctx, "t1")

		assert.ErrorIs(t, err, ErrPartialFailure)
		assert.Equal(t, 2, report.Succeeded)
		assert.Equal(t, 1, report.Failed)
		tr := f.tournament(t, "t1")
		assert.Equal(t, models.CANCELLED, tr.Status)
		assert.Equal(t, models.SETTLE_REFUND, tr.SettlementPending)

		failing = false
		report, err = f.svc.CancelMatch(ctx, "t1")

		require.NoError(t, err)
		assert.Equal(t, 1, report.Succeeded)
		assert.Equal(t, 2, report.Skipped)
		for _, u := range []string{"u1", "u2", "u3"} {
			assert.Equal(t, int64(50), f.wallet(t, u).DepositedBalance)
		}
		assert.Empty(t, f.tournament(t, "t1").SettlementPending)

		_, err = f.svc.ResumeCancellation(ctx, "t1")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Stale Read Does Not Refund Twice", func(t *testing.T) {
		f := newFixture(t, nil)
		seedPlayers(t, f, "u1", "u2", "u3")
		f.store.PutTournament(soloTournament())
		_, err := f.svc.CancelMatch(ctx, "t1")
		require.NoError(t, err)

		// A second pass working from a copy read before the refunds landed.
		stale := soloTournament()
		stale.Status = models.CANCELLED
		report, err := f.svc.refund(ctx, &stale, false)

		require.NoError(t, err)
		assert.Equal(t, 3, report.Skipped)
		assert.Equal(t, int64(50), f.wallet(t, "u1").WalletBalance)
	})

	t.Run("Result In Progress", func(t *testing.T) {
		f := newFixture(t, nil)
		tr := soloTournament()
		tr.SettlementPending = models.SETTLE_RESULT
		f.store.PutTournament(tr)

		_, err := f.svc.CancelMatch(ctx, "t1")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestRefundTransactionID(t *testing.T) {
	assert.Equal(t, refundTransactionID("t1", "p1"), refundTransactionID("t1", "p1"))
	assert.NotEqual(t, refundTransactionID("t1", "p1"), refundTransactionID("t1", "p2"))
	assert.NotEqual(t, refundTransactionID("t1", "p1"), refundTransactionID("t2", "p1"))
}
