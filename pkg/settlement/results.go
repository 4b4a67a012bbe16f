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

func (s *Service) resultTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	t, err := s.store.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, classify(err, "tournament "+tournamentID)
	}
	if t.Status == models.CANCELLED || t.SettlementPending == models.SETTLE_REFUND {
		return nil, invalidState("tournament %s is cancelled", tournamentID)
	}
	return t, nil
}

// PreviewResult computes what AnnounceResult would pay without writing anything.
func (s *Service) PreviewResult(ctx context.Context, tournamentID string, results []ParticipantResult, winners models.Winners) ([]EarningsLine, error) {
	t, err := s.resultTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := validateWinners(t, winners); err != nil {
		return nil, err
	}
	kills, err := killsByParticipant(t, results)
	if err != nil {
		return nil, err
	}
	return plan(t, models.ResultIntent{Winners: winners, Kills: kills}), nil
}

// AnnounceResult settles a first announcement or a correction. Each
// participant is paid only the difference from what was last settled for them,
// so announcing the same result twice moves no money.
func (s *Service) AnnounceResult(ctx context.Context, tournamentID string, results []ParticipantResult, winners models.Winners) (*BulkReport, error) {
	t, err := s.resultTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := validateWinners(t, winners); err != nil {
		return nil, err
	}
	kills, err := killsByParticipant(t, results)
	if err != nil {
		return nil, err
	}

	intent := models.ResultIntent{Id: uuid.New().String(), Winners: winners, Kills: kills, RequestedAt: s.Now()}
	if err := s.store.SaveResultIntent(ctx, t.Id, intent); err != nil {
		return nil, classify(err, "tournament "+tournamentID)
	}
	return s.settleResult(ctx, t, intent, true)
}

// ResumeResult re-runs an interrupted result settlement from its saved intent.
func (s *Service) ResumeResult(ctx context.Context, tournamentID string) (*BulkReport, error) {
	t, err := s.resultTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.SettlementPending != models.SETTLE_RESULT || t.PendingResult == nil {
		return nil, invalidState("tournament %s has no result settlement pending", tournamentID)
	}
	return s.settleResult(ctx, t, *t.PendingResult, false)
}

func (s *Service) settleResult(ctx context.Context, t *models.Tournament, intent models.ResultIntent, reschedule bool) (*BulkReport, error) {
	report := &BulkReport{TournamentID: t.Id}
	var credited []EarningsLine

	for i, line := range plan(t, intent) {
		p := t.Participants[i]
		guard := storage.ParticipantSettlement{
			TournamentID:  t.Id,
			Index:         i,
			ParticipantID: p.ParticipantId,
			Previous:      line.Previous,
			Next:          line.Earnings,
			Kills:         line.Kills,
		}

		var err error
		switch {
		case line.Delta != 0 && p.UserId != "":
			_, err = s.apply(ctx, storage.LedgerDelta{
				UserID:  p.UserId,
				Balance: models.WINNING,
				Delta:   line.Delta,
				Txn:     winningTransaction(t, p, line),
				Guards:  []storage.Guard{guard},
			})
		case line.Kills != p.Kills || line.Delta != 0:
			err = s.store.CommitGuards(ctx, guard)
		default:
			report.Skipped++
			continue
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to settle participant",
				"tournament_id", t.Id,
				"participant_id", p.ParticipantId,
				"user_id", p.UserId,
				"delta", line.Delta,
				"error", err,
			)
			report.fail(p.ParticipantId, p.UserId, err)
			continue
		}
		report.Succeeded++
		if line.Delta > 0 && p.UserId != "" {
			credited = append(credited, line)
		}
	}

	if report.Failed > 0 {
		if reschedule {
			s.scheduleRetry(ctx, models.SETTLE_RESULT, t.Id)
		}
		return report, partialFailure(report)
	}

	err := s.store.FinalizeResult(ctx, t.Id, intent.Id, resultsSnapshot(t, intent.Winners), s.Now())
	switch {
	case errors.Is(err, storage.ErrConditionFailed):
		// A newer announcement or a cancellation owns the tournament now; its
		// own pass reconciles what this one paid.
		s.logger.WarnContext(ctx, "result superseded before it was finalized", "tournament_id", t.Id, "intent_id", intent.Id)
		return report, invalidState("result for tournament %s was superseded before it was finalized", t.Id)
	case err != nil:
		return report, classify(err, "tournament "+t.Id)
	}
	s.logger.InfoContext(ctx, "tournament result settled",
		"tournament_id", t.Id,
		"succeeded", report.Succeeded,
		"skipped", report.Skipped,
		"correction", t.ResultAnnouncedAt != nil,
	)

	for _, line := range credited {
		s.notifyUser(ctx, line.UserID, notify.Message{
			Title: "Tournament Results",
			Body:  fmt.Sprintf("You earned %s in %s.", models.FormatAmount(line.Delta), t.Name),
			Data:  map[string]string{"type": "tournament", "tournament_id": t.Id},
		})
	}
	return report, nil
}

// winningTransaction is the audit entry of one participant's earnings delta.
func winningTransaction(t *models.Tournament, p models.Participant, line EarningsLine) *models.Transaction {
	kills, previous, next := line.Kills, line.Previous, line.Earnings
	txn := &models.Transaction{
		UserName:         p.Name,
		Type:             models.WIN,
		Amount:           line.Delta,
		Description:      "Tournament Winning - " + t.Name,
		ReferenceId:      t.Id,
		TournamentId:     t.Id,
		Kills:            &kills,
		PreviousEarnings: &previous,
		NewEarnings:      &next,
	}
	switch {
	case line.Delta < 0:
		txn.Type = models.WINNING_ADJUSTMENT
		txn.Amount = -line.Delta
		txn.Description = "Tournament Winning (Correction -) - " + t.Name
	case t.ResultAnnouncedAt != nil:
		txn.Description = "Tournament Winning (Correction +) - " + t.Name
	}
	return txn
}
