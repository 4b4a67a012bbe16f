package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

func (s *Store) GetDepositRequest(ctx context.Context, requestID string) (*models.DepositRequest, error) {
	var req models.DepositRequest
	if err := s.getItem(ctx, s.Tables.Deposits, "id", requestID, true, &req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("deposit request %s: %w", requestID, err)
		}
		return nil, fmt.Errorf("failed to get deposit request: %w", err)
	}
	return &req, nil
}

func (s *Store) GetWithdrawalRequest(ctx context.Context, requestID string) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	if err := s.getItem(ctx, s.Tables.Withdrawals, "id", requestID, true, &req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("withdrawal request %s: %w", requestID, err)
		}
		return nil, fmt.Errorf("failed to get withdrawal request: %w", err)
	}
	return &req, nil
}

func (s *Store) GetLottery(ctx context.Context, lotteryID string) (*models.Lottery, error) {
	var lottery models.Lottery
	if err := s.getItem(ctx, s.Tables.Lotteries, "id", lotteryID, true, &lottery); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("lottery %s: %w", lotteryID, err)
		}
		return nil, fmt.Errorf("failed to get lottery: %w", err)
	}
	return &lottery, nil
}
