package models

import (
	"errors"
	"math"
	"time"
)

// SubBalance names one of the three partitions of a user's wallet.
type SubBalance string

const (
	DEPOSITED SubBalance = "deposited"
	WINNING   SubBalance = "winning"
	BONUS     SubBalance = "bonus"
)

// Valid reports whether b is a known sub-balance.
func (b SubBalance) Valid() bool {
	switch b {
	case DEPOSITED, WINNING, BONUS:
		return true
	}
	return false
}

// Attribute returns the stored attribute name backing the sub-balance.
func (b SubBalance) Attribute() string {
	return string(b) + "_balance"
}

// Wallet is the balance document stored on the user record.
// WalletBalance is the denormalized sum of the three sub-balances.
type Wallet struct {
	UserId           string    `json:"user_id" dynamodbav:"user_id"`
	DisplayName      string    `json:"display_name" dynamodbav:"display_name"`
	Email            string    `json:"email" dynamodbav:"email"`
	FCMTokens        []string  `json:"fcm_tokens,omitempty" dynamodbav:"fcm_tokens,omitempty"`
	WalletBalance    int64     `json:"wallet_balance" dynamodbav:"wallet_balance"`
	DepositedBalance int64     `json:"deposited_balance" dynamodbav:"deposited_balance"`
	WinningBalance   int64     `json:"winning_balance" dynamodbav:"winning_balance"`
	BonusBalance     int64     `json:"bonus_balance" dynamodbav:"bonus_balance"`
	TotalWinnings    int64     `json:"total_winnings" dynamodbav:"total_winnings"`
	Version          int64     `json:"version" dynamodbav:"version"`
	CreatedAt        time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Balance returns the current value of one sub-balance.
func (w *Wallet) Balance(b SubBalance) int64 {
	switch b {
	case DEPOSITED:
		return w.DepositedBalance
	case WINNING:
		return w.WinningBalance
	case BONUS:
		return w.BonusBalance
	}
	return 0
}

var ErrBalanceOverflow = errors.New("balance would overflow")

// Add moves one sub-balance and the total by the same amount. The wallet is
// left untouched when either would leave the int64 range.
func (w *Wallet) Add(b SubBalance, amount int64) error {
	var sub *int64
	switch b {
	case DEPOSITED:
		sub = &w.DepositedBalance
	case WINNING:
		sub = &w.WinningBalance
	case BONUS:
		sub = &w.BonusBalance
	default:
		return nil
	}
	if overflows(*sub, amount) || overflows(w.WalletBalance, amount) {
		return ErrBalanceOverflow
	}
	*sub += amount
	w.WalletBalance += amount
	return nil
}

func overflows(a, b int64) bool {
	return (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b)
}

// Consistent reports whether the total matches the sub-balances and nothing is negative.
func (w *Wallet) Consistent() bool {
	if w.DepositedBalance < 0 || w.WinningBalance < 0 || w.BonusBalance < 0 || w.WalletBalance < 0 {
		return false
	}
	return w.WalletBalance == w.DepositedBalance+w.WinningBalance+w.BonusBalance
}

// TransactionType enumerates the kinds of ledger entries.
type TransactionType string

const (
	DEPOSIT            TransactionType = "deposit"
	WITHDRAWAL         TransactionType = "withdrawal"
	ENTRY_FEE          TransactionType = "entry_fee"
	WIN                TransactionType = "winning"
	WINNING_ADJUSTMENT TransactionType = "winning_adjustment"
	BONUS_CREDIT       TransactionType = "bonus"
	MANUAL_CREDIT      TransactionType = "manual_credit"
	MANUAL_DEBIT       TransactionType = "manual_debit"
	REFUND             TransactionType = "refund"
)

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	PENDING   TransactionStatus = "pending"
	COMPLETED TransactionStatus = "completed"
	REJECTED  TransactionStatus = "rejected"
)

// TransactionsPartition is the constant partition key of the recent-ledger index.
const TransactionsPartition = "TRANSACTIONS"

// Transaction is an append-only ledger entry. Only Status, Description and
// UpdatedAt ever change, and only once, from pending.
type Transaction struct {
	Id               string            `dynamodbav:"id"`
	UserId           string            `dynamodbav:"user_id"`
	UserName         string            `dynamodbav:"user_name,omitempty"`
	UserEmail        string            `dynamodbav:"user_email,omitempty"`
	Type             TransactionType   `dynamodbav:"type"`
	Amount           int64             `dynamodbav:"amount"`
	Status           TransactionStatus `dynamodbav:"status"`
	Description      string            `dynamodbav:"description"`
	ReferenceId      string            `dynamodbav:"reference_id,omitempty"`
	TournamentId     string            `dynamodbav:"tournament_id,omitempty"`
	WalletType       SubBalance        `dynamodbav:"wallet_type,omitempty"`
	Kills            *int              `dynamodbav:"kills,omitempty"`
	PreviousEarnings *int64            `dynamodbav:"previous_earnings,omitempty"`
	NewEarnings      *int64            `dynamodbav:"new_earnings,omitempty"`
	BalanceAfter     *int64            `dynamodbav:"balance_after,omitempty"`
	Shortfall        int64             `dynamodbav:"shortfall,omitempty"`
	Note             string            `dynamodbav:"note,omitempty"`
	CreatedAt        time.Time         `dynamodbav:"created_at"`
	UpdatedAt        time.Time         `dynamodbav:"updated_at"`
	GSI1PK           string            `dynamodbav:"gsi1pk"`
}

// DepositStatus is the lifecycle of a deposit request.
type DepositStatus string

const (
	DEPOSIT_PENDING  DepositStatus = "pending"
	DEPOSIT_APPROVED DepositStatus = "approved"
	DEPOSIT_REJECTED DepositStatus = "rejected"
)

// DepositRequest is filed by a user after paying outside the platform.
type DepositRequest struct {
	Id           string        `dynamodbav:"id"`
	UserId       string        `dynamodbav:"user_id"`
	UserName     string        `dynamodbav:"user_name,omitempty"`
	UserEmail    string        `dynamodbav:"user_email,omitempty"`
	Amount       int64         `dynamodbav:"amount"`
	UTR          string        `dynamodbav:"utr,omitempty"`
	Status       DepositStatus `dynamodbav:"status"`
	RejectReason string        `dynamodbav:"reject_reason,omitempty"`
	ApprovedAt   *time.Time    `dynamodbav:"approved_at,omitempty"`
	RejectedAt   *time.Time    `dynamodbav:"rejected_at,omitempty"`
	CreatedAt    time.Time     `dynamodbav:"created_at"`
}

// WithdrawalStatus is the lifecycle of a withdrawal request.
type WithdrawalStatus string

const (
	WITHDRAWAL_PENDING   WithdrawalStatus = "pending"
	WITHDRAWAL_COMPLETED WithdrawalStatus = "completed"
	WITHDRAWAL_REJECTED  WithdrawalStatus = "rejected"
)

// WithdrawalRequest is filed by a user; the amount was debited from the
// winning sub-balance when it was filed.
type WithdrawalRequest struct {
	Id            string           `dynamodbav:"id"`
	UserId        string           `dynamodbav:"user_id"`
	UserName      string           `dynamodbav:"user_name,omitempty"`
	UserEmail     string           `dynamodbav:"user_email,omitempty"`
	Amount        int64            `dynamodbav:"amount"`
	PaymentMethod string           `dynamodbav:"payment_method,omitempty"`
	Status        WithdrawalStatus `dynamodbav:"status"`
	RejectReason  string           `dynamodbav:"reject_reason,omitempty"`
	CompletedAt   *time.Time       `dynamodbav:"completed_at,omitempty"`
	RejectedAt    *time.Time       `dynamodbav:"rejected_at,omitempty"`
	CreatedAt     time.Time        `dynamodbav:"created_at"`
}

// LotteryStatus is the lifecycle of a lottery.
type LotteryStatus string

const (
	LOTTERY_UPCOMING LotteryStatus = "upcoming"
	LOTTERY_ONGOING  LotteryStatus = "ongoing"
	LOTTERY_FINISHED LotteryStatus = "finished"
)

// LotteryParticipant is one entrant of a lottery.
type LotteryParticipant struct {
	UserId string `dynamodbav:"user_id"`
	Name   string `dynamodbav:"name,omitempty"`
	Email  string `dynamodbav:"email,omitempty"`
}

// Lottery has a single prize and, once drawn, a single winner.
type Lottery struct {
	Id           string               `dynamodbav:"id"`
	Title        string               `dynamodbav:"title"`
	Status       LotteryStatus        `dynamodbav:"status"`
	PrizeAmount  int64                `dynamodbav:"prize_amount"`
	Participants []LotteryParticipant `dynamodbav:"participants"`
	WinnerId     string               `dynamodbav:"winner_id,omitempty"`
	WinnerName   string               `dynamodbav:"winner_name,omitempty"`
	WinnerEmail  string               `dynamodbav:"winner_email,omitempty"`
	FinishedAt   *time.Time           `dynamodbav:"finished_at,omitempty"`
}

// Participant returns the entrant with the given user ID.
func (l *Lottery) Participant(userID string) (LotteryParticipant, bool) {
	for _, p := range l.Participants {
		if p.UserId == userID {
			return p, true
		}
	}
	return LotteryParticipant{}, false
}
