package memory

import (
	"fmt"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

// checkGuard evaluates a guard's condition; callers hold the lock.
func (s *Store) checkGuard(g storage.Guard) error {
	ok := false
	switch g := g.(type) {
	case storage.TransactionTransition:
		tx, found := s.transactions[g.TransactionID]
		ok = found && tx.Status == g.From
	case storage.DepositTransition:
		req, found := s.deposits[g.RequestID]
		ok = found && req.Status == g.From
	case storage.WithdrawalTransition:
		req, found := s.withdrawals[g.RequestID]
		ok = found && req.Status == g.From
	case storage.ParticipantSettlement:
		t, found := s.tournaments[g.TournamentID]
		ok = found && t.Status != models.CANCELLED && g.Index < len(t.Participants) &&
			t.Participants[g.Index].ParticipantId == g.ParticipantID &&
			t.Participants[g.Index].PreviousEarnings == g.Previous
	case storage.ParticipantRefund:
		t, found := s.tournaments[g.TournamentID]
		ok = found && t.Status == models.CANCELLED && g.Index < len(t.Participants) &&
			t.Participants[g.Index].ParticipantId == g.ParticipantID &&
			t.Participants[g.Index].RefundedAt == nil
	case storage.LotteryDraw:
		l, found := s.lotteries[g.LotteryID]
		ok = found && l.Status != models.LOTTERY_FINISHED && l.WinnerId == ""
	default:
		return fmt.Errorf("unsupported guard %T", g)
	}
	if !ok {
		return fmt.Errorf("%T: %w", g, storage.ErrConditionFailed)
	}
	return nil
}

// applyGuard performs a guard's transition; the condition has been checked.
func (s *Store) applyGuard(g storage.Guard, now time.Time) {
	switch g := g.(type) {
	case storage.TransactionTransition:
		tx := s.transactions[g.TransactionID]
		tx.Status = g.To
		if g.Description != "" {
			tx.Description = g.Description
		}
		tx.UpdatedAt = now
	case storage.DepositTransition:
		req := s.deposits[g.RequestID]
		at := stamp(g.At, now)
		req.Status = g.To
		if g.To == models.DEPOSIT_APPROVED {
			req.ApprovedAt = &at
		} else {
			req.RejectedAt = &at
			req.RejectReason = g.Reason
		}
	case storage.WithdrawalTransition:
		req := s.withdrawals[g.RequestID]
		at := stamp(g.At, now)
		req.Status = g.To
		if g.To == models.WITHDRAWAL_COMPLETED {
			req.CompletedAt = &at
		} else {
			req.RejectedAt = &at
			req.RejectReason = g.Reason
		}
	case storage.ParticipantSettlement:
		t := s.tournaments[g.TournamentID]
		t.Participants[g.Index].PreviousEarnings = g.Next
		t.Participants[g.Index].Kills = g.Kills
		t.UpdatedAt = now
	case storage.ParticipantRefund:
		t := s.tournaments[g.TournamentID]
		at := stamp(g.At, now)
		t.Participants[g.Index].RefundedAt = &at
		t.UpdatedAt = now
	case storage.LotteryDraw:
		l := s.lotteries[g.LotteryID]
		at := stamp(g.At, now)
		l.WinnerId = g.WinnerID
		l.WinnerName = g.WinnerName
		l.WinnerEmail = g.WinnerEmail
		l.Status = models.LOTTERY_FINISHED
		l.FinishedAt = &at
	}
}

func stamp(at, fallback time.Time) time.Time {
	if at.IsZero() {
		return fallback
	}
	return at
}
