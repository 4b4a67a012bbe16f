package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/notify"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/google/uuid"
)

// refundNamespace scopes the deterministic IDs of refund transactions.
var refundNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:arena-ledger:refund"))

// refundTransactionID is the same for every attempt to refund one participant,
// so a second insert of the same refund is rejected by the store.
func refundTransactionID(tournamentID, participantID string) string {
	return uuid.NewSHA1(refundNamespace, []byte(tournamentID+"/"+participantID)).String()
}

// CancelMatch cancels an upcoming or live tournament and refunds every entry
// fee. The status flip happens first, in one conditional write; refunds are
// then applied at most once per participant. Calling it again on a
// cancellation whose refunds are unfinished resumes them.
func (s *Service) CancelMatch(ctx context.Context, tournamentID string) (*BulkReport, error) {
	what := "tournament " + tournamentID
	t, err := s.store.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, classify(err, what)
	}

	switch {
	case t.Status == models.FINISHED:
		return nil, invalidState("%s is already finished", what)
	case t.Status == models.CANCELLED && t.SettlementPending == models.SETTLE_REFUND:
		return s.refund(ctx, t, true)
	case t.Status == models.CANCELLED:
		return nil, invalidState("%s is already cancelled", what)
	case t.SettlementPending == models.SETTLE_RESULT:
		return nil, invalidState("%s has a result settlement in progress", what)
	}

	now := s.Now()
	if err := s.store.BeginCancellation(ctx, t.Id, now); err != nil {
		if !errors.Is(err, storage.ErrConditionFailed) {
			return nil, classify(err, what)
		}
		// Someone else moved it first; only an unfinished cancellation is ours to continue.
		t, err = s.store.GetTournament(ctx, tournamentID)
		if err != nil {
			return nil, classify(err, what)
		}
		if t.Status != models.CANCELLED || t.SettlementPending != models.SETTLE_REFUND {
			return nil, invalidState("%s is %s", what, t.Status)
		}
		return s.refund(ctx, t, true)
	}

	t.Status = models.CANCELLED
	t.CancelledAt = &now
	t.SettlementPending = models.SETTLE_REFUND
	s.logger.InfoContext(ctx, "tournament cancelled", "tournament_id", t.Id, "participants", len(t.Participants))
	return s.refund(ctx, t, true)
}

// ResumeCancellation finishes the refunds of a cancelled tournament.
func (s *Service) ResumeCancellation(ctx context.Context, tournamentID string) (*BulkReport, error) {
	t, err := s.store.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, classify(err, "tournament "+tournamentID)
	}
	if t.Status != models.CANCELLED || t.SettlementPending != models.SETTLE_REFUND {
		return nil, invalidState("tournament %s has no refunds pending", tournamentID)
	}
	return s.refund(ctx, t, false)
}

func (s *Service) refund(ctx context.Context, t *models.Tournament, reschedule bool) (*BulkReport, error) {
	report := &BulkReport{TournamentID: t.Id}
	now := s.Now()
	var refunded []string

	for i, p := range t.Participants {
		if t.EntryFee <= 0 || p.UserId == "" || p.RefundedAt != nil {
			report.Skipped++
			continue
		}

		_, err := s.apply(ctx, storage.LedgerDelta{
			UserID:  p.UserId,
			Balance: models.DEPOSITED,
			Delta:   t.EntryFee,
			Txn: &models.Transaction{
				Id:           refundTransactionID(t.Id, p.ParticipantId),
				UserName:     p.Name,
				Type:         models.REFUND,
				Amount:       t.EntryFee,
				Description:  "Match Cancelled Refund - " + t.Name,
				ReferenceId:  t.Id,
				TournamentId: t.Id,
			},
			Guards: []storage.Guard{storage.ParticipantRefund{
				TournamentID:  t.Id,
				Index:         i,
				ParticipantID: p.ParticipantId,
				At:            now,
			}},
		})
		if errors.Is(err, storage.ErrConditionFailed) {
			// Refunded by a concurrent pass.
			report.Skipped++
			continue
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to refund participant",
				"tournament_id", t.Id,
				"participant_id", p.ParticipantId,
				"user_id", p.UserId,
				"error", err,
			)
			report.fail(p.ParticipantId, p.UserId, err)
			continue
		}
		report.Succeeded++
		refunded = append(refunded, p.UserId)
	}

	if report.Failed > 0 {
		if reschedule {
			s.scheduleRetry(ctx, models.SETTLE_REFUND, t.Id)
		}
		return report, partialFailure(report)
	}

	if err := s.store.CompleteCancellation(ctx, t.Id); err != nil {
		return report, classify(err, "tournament "+t.Id)
	}
	s.logger.InfoContext(ctx, "tournament refunds settled", "tournament_id", t.Id, "succeeded", report.Succeeded, "skipped", report.Skipped)

	for _, userID := range refunded {
		s.notifyUser(ctx, userID, notify.Message{
			Title: "Match Cancelled",
			Body:  fmt.Sprintf("%s was cancelled. Your entry fee of %s has been refunded.", t.Name, models.FormatAmount(t.EntryFee)),
			Data:  map[string]string{"type": "tournament", "tournament_id": t.Id},
		})
	}
	return report, nil
}
