package settlement

import (
	"context"
	"fmt"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/notify"
	"github.com/chris/arena-ledger/pkg/storage"
)

// SelectWinner draws the single winner of a lottery and credits the prize to
// their winning balance. A finished lottery cannot be drawn again.
func (s *Service) SelectWinner(ctx context.Context, lotteryID, userID string) (*models.Lottery, error) {
	what := "lottery " + lotteryID
	lottery, err := s.store.GetLottery(ctx, lotteryID)
	if err != nil {
		return nil, classify(err, what)
	}
	if lottery.Status == models.LOTTERY_FINISHED || lottery.WinnerId != "" {
		return nil, invalidState("%s already has a winner", what)
	}
	winner, ok := lottery.Participant(userID)
	if !ok {
		return nil, validation("user %s is not a participant of %s", userID, what)
	}

	now := s.Now()
	draw := storage.LotteryDraw{
		LotteryID:   lottery.Id,
		WinnerID:    winner.UserId,
		WinnerName:  winner.Name,
		WinnerEmail: winner.Email,
		At:          now,
	}

	if lottery.PrizeAmount > 0 {
		_, err = s.apply(ctx, storage.LedgerDelta{
			UserID:  winner.UserId,
			Balance: models.WINNING,
			Delta:   lottery.PrizeAmount,
			Txn: &models.Transaction{
				UserName:    winner.Name,
				UserEmail:   winner.Email,
				Type:        models.WIN,
				Amount:      lottery.PrizeAmount,
				Description: "Lottery Winner - " + lottery.Title,
				ReferenceId: lottery.Id,
			},
			Guards: []storage.Guard{draw},
		})
		if err != nil {
			return nil, ledgerError(err, winner.UserId, what)
		}
	} else if err := s.store.CommitGuards(ctx, draw); err != nil {
		return nil, classify(err, what)
	}

	lottery.WinnerId = winner.UserId
	lottery.WinnerName = winner.Name
	lottery.WinnerEmail = winner.Email
	lottery.Status = models.LOTTERY_FINISHED
	lottery.FinishedAt = &now

	s.notifyUser(ctx, winner.UserId, notify.Message{
		Title: "You won the lottery!",
		Body:  fmt.Sprintf("%s: %s has been added to your winnings.", lottery.Title, models.FormatAmount(lottery.PrizeAmount)),
		Data:  map[string]string{"type": "lottery", "lottery_id": lottery.Id},
	})
	return lottery, nil
}
