package storage

import (
	"time"

	"github.com/chris/arena-ledger/pkg/models"
)

// Guard is a conditional state transition committed atomically with a ledger
// write. If its condition does not hold, the whole write is rejected.
type Guard interface {
	guard()
}

// TransactionTransition moves a linked transaction out of From.
type TransactionTransition struct {
	TransactionID string
	From          models.TransactionStatus
	To            models.TransactionStatus
	Description   string
	At            time.Time
}

// DepositTransition settles a deposit request that is still in From.
type DepositTransition struct {
	RequestID string
	From      models.DepositStatus
	To        models.DepositStatus
	Reason    string
	At        time.Time
}

// WithdrawalTransition settles a withdrawal request that is still in From.
type WithdrawalTransition struct {
	RequestID string
	From      models.WithdrawalStatus
	To        models.WithdrawalStatus
	Reason    string
	At        time.Time
}

// ParticipantSettlement records a participant's new earnings. It holds only if
// the participant at Index is still ParticipantID and still has Previous as
// last-settled earnings, so the same delta can never be applied twice.
type ParticipantSettlement struct {
	TournamentID  string
	Index         int
	ParticipantID string
	Previous      int64
	Next          int64
	Kills         int
}

// ParticipantRefund stamps a participant of a cancelled tournament as refunded.
// It holds only once per participant.
type ParticipantRefund struct {
	TournamentID  string
	Index         int
	ParticipantID string
	At            time.Time
}

// LotteryDraw sets the single winner of a lottery that is not yet finished.
type LotteryDraw struct {
	LotteryID   string
	WinnerID    string
	WinnerName  string
	WinnerEmail string
	At          time.Time
}

func (TransactionTransition) guard() {}
func (DepositTransition) guard()     {}
func (WithdrawalTransition) guard()  {}
func (ParticipantSettlement) guard() {}
func (ParticipantRefund) guard()     {}
func (LotteryDraw) guard()           {}
