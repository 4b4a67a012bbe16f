package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/google/uuid"
)

const conditionalCheckFailed = "ConditionalCheckFailed"

// ApplyLedgerDelta moves one sub-balance and the wallet total by the same
// clamped amount, inserts the transaction record and commits every guard in a
// single TransactWriteItems call. The wallet update is conditioned on the
// version that was read, so a concurrent write forces a fresh read and retry.
func (s *Store) ApplyLedgerDelta(ctx context.Context, d storage.LedgerDelta) (*storage.LedgerResult, error) {
	if !d.Balance.Valid() {
		return nil, fmt.Errorf("unknown sub-balance %q", d.Balance)
	}

	for attempt := 0; ; attempt++ {
		// 1. Consistent read of the wallet for the compare-and-swap.
		wallet, err := s.getWallet(ctx, d.UserID, true)
		if err != nil {
			return nil, err
		}

		// 2. Clamp the delta so the sub-balance floors at zero.
		applied, shortfall := storage.Clamp(wallet.Balance(d.Balance), d.Delta)
		next := *wallet
		if err := next.Add(d.Balance, applied); err != nil {
			return nil, fmt.Errorf("wallet for user ID %s: %w", d.UserID, err)
		}
		now := time.Now().UTC()

		// 3. Build the wallet update, the transaction insert and the guards.
		items := []types.TransactWriteItem{s.walletUpdate(wallet, d, applied, now)}

		var txn *models.Transaction
		if d.Txn != nil {
			copied := *d.Txn
			txn = &copied
			s.completeTransaction(txn, d, next.WalletBalance, shortfall, now)
			txnAV, err := attributevalue.MarshalMap(txn)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal transaction: %w", err)
			}
			items = append(items, types.TransactWriteItem{Put: &types.Put{
				TableName:           aws.String(s.Tables.Transactions),
				Item:                txnAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			}})
		}

		for _, g := range d.Guards {
			item, err := s.guardItem(g, now)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}

		// 4. Execute the transaction.
		_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
		if err == nil {
			if d.CountsTowardWinnings(applied) {
				next.TotalWinnings += applied
			}
			next.Version++
			next.UpdatedAt = now
			return &storage.LedgerResult{Applied: applied, Shortfall: shortfall, Wallet: &next, Txn: txn}, nil
		}

		walletLost, guardFailed := cancellationReasons(err)
		switch {
		case guardFailed:
			return nil, fmt.Errorf("ledger write for user %s rejected: %w", d.UserID, storage.ErrConditionFailed)
		case walletLost && attempt < s.MaxRetries:
			slog.Debug("wallet version changed, retrying ledger write", "user_id", d.UserID, "attempt", attempt+1)
			if err := sleep(ctx, s.RetryDelay); err != nil {
				return nil, err
			}
			continue
		case walletLost:
			return nil, fmt.Errorf("ledger write for user %s after %d retries: %w", d.UserID, s.MaxRetries, storage.ErrVersionConflict)
		}
		return nil, fmt.Errorf("failed to execute ledger transaction: %w", err)
	}
}

// CommitGuards commits state transitions that move no money.
func (s *Store) CommitGuards(ctx context.Context, guards ...storage.Guard) error {
	if len(guards) == 0 {
		return nil
	}
	now := time.Now().UTC()
	items := make([]types.TransactWriteItem, 0, len(guards))
	for _, g := range guards {
		item, err := s.guardItem(g, now)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if aws.ToString(reason.Code) == conditionalCheckFailed {
					return storage.ErrConditionFailed
				}
			}
		}
		return fmt.Errorf("failed to commit guards: %w", err)
	}
	return nil
}

func (s *Store) walletUpdate(wallet *models.Wallet, d storage.LedgerDelta, applied int64, now time.Time) types.TransactWriteItem {
	update := "SET #sub = if_not_exists(#sub, :zero) + :applied, " +
		"wallet_balance = if_not_exists(wallet_balance, :zero) + :applied, " +
		"#version = if_not_exists(#version, :zero) + :inc, updated_at = :now"
	if d.CountsTowardWinnings(applied) {
		update += ", total_winnings = if_not_exists(total_winnings, :zero) + :applied"
	}

	return types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(s.Tables.Users),
		Key:                 stringKey("user_id", wallet.UserId),
		UpdateExpression:    aws.String(update),
		ConditionExpression: aws.String("attribute_exists(user_id) AND (attribute_not_exists(#version) OR #version = :version)"),
		ExpressionAttributeNames: map[string]string{
			"#sub":     d.Balance.Attribute(),
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":applied": marshalInt(applied),
			":zero":    marshalInt(0),
			":inc":     marshalInt(1),
			":version": marshalInt(wallet.Version),
			":now":     marshalTime(now),
		},
	}}
}

// completeTransaction fills in the server-side details of a new transaction.
func (s *Store) completeTransaction(txn *models.Transaction, d storage.LedgerDelta, balanceAfter, shortfall int64, now time.Time) {
	if txn.Id == "" {
		txn.Id = uuid.New().String()
	}
	if txn.UserId == "" {
		txn.UserId = d.UserID
	}
	if txn.WalletType == "" {
		txn.WalletType = d.Balance
	}
	if txn.Status == "" {
		txn.Status = models.COMPLETED
	}
	txn.BalanceAfter = &balanceAfter
	txn.Shortfall = shortfall
	txn.CreatedAt = now
	txn.UpdatedAt = now
	txn.GSI1PK = models.TransactionsPartition
}

// cancellationReasons splits a cancelled transaction into a lost wallet race
// (item 0) and a failed guard or duplicate insert (any later item).
func cancellationReasons(err error) (walletLost, guardFailed bool) {
	var txc *types.TransactionCanceledException
	if !errors.As(err, &txc) {
		return false, false
	}
	for i, reason := range txc.CancellationReasons {
		if aws.ToString(reason.Code) != conditionalCheckFailed {
			continue
		}
		if i == 0 {
			walletLost = true
		} else {
			guardFailed = true
		}
	}
	return walletLost, guardFailed
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
