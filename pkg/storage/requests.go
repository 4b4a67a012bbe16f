package storage

import (
	"context"

	"github.com/chris/arena-ledger/pkg/models"
)

// RequestReader reads deposit and withdrawal requests.
type RequestReader interface {
	GetDepositRequest(ctx context.Context, requestID string) (*models.DepositRequest, error)
	GetWithdrawalRequest(ctx context.Context, requestID string) (*models.WithdrawalRequest, error)
}

// LotteryReader reads lotteries.
type LotteryReader interface {
	GetLottery(ctx context.Context, lotteryID string) (*models.Lottery, error)
}
