package dynamodb

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/chris/arena-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func walletItem(t *testing.T, w models.Wallet) *dynamodb.GetItemOutput {
	t.Helper()
	av, err := attributevalue.MarshalMap(w)
	require.NoError(t, err)
	return &dynamodb.GetItemOutput{Item: av}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	return &types.TransactionCanceledException{Message: aws.String("Transaction cancelled"), CancellationReasons: reasons}
}

func numberAttr(t *testing.T, item map[string]types.AttributeValue, name string) string {
	t.Helper()
	n, ok := item[name].(*types.AttributeValueMemberN)
	require.True(t, ok, "attribute %s is not a number", name)
	return n.Value
}

func TestApplyLedgerDelta(t *testing.T) {
	wallet := models.Wallet{UserId: "user1", WalletBalance: 140, DepositedBalance: 100, WinningBalance: 40, Version: 7}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return aws.ToBool(in.ConsistentRead)
		})).Return(walletItem(t, wallet), nil).Once()

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.TransactWriteItemsInput) }).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		result, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.WINNING,
			Delta:   250,
			Txn:     &models.Transaction{Type: models.WIN, Amount: 250, Description: "Tournament Winning - Finals"},
			Guards: []storage.Guard{storage.ParticipantSettlement{
				TournamentID: "t1", Index: 2, ParticipantID: "p3", Previous: 0, Next: 250, Kills: 5,
			}},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(250), result.Applied)
		assert.Equal(t, int64(0), result.Shortfall)
		assert.Equal(t, int64(290), result.Wallet.WinningBalance)
		assert.Equal(t, int64(390), result.Wallet.WalletBalance)
		assert.Equal(t, int64(250), result.Wallet.TotalWinnings)
		assert.Equal(t, int64(8), result.Wallet.Version)
		assert.NotEmpty(t, result.Txn.Id)
		assert.Equal(t, models.COMPLETED, result.Txn.Status)
		assert.Equal(t, int64(390), *result.Txn.BalanceAfter)

		require.Len(t, captured.TransactItems, 3)
		walletUpdate := captured.TransactItems[0].Update
		assert.Equal(t, "users", *walletUpdate.TableName)
		assert.Equal(t, "winning_balance", walletUpdate.ExpressionAttributeNames["#sub"])
		assert.Contains(t, *walletUpdate.UpdateExpression, "total_winnings")
		assert.Equal(t, "7", numberAttr(t, walletUpdate.ExpressionAttributeValues, ":version"))
		assert.Equal(t, "250", numberAttr(t, walletUpdate.ExpressionAttributeValues, ":applied"))

		put := captured.TransactItems[1].Put
		assert.Equal(t, "transactions", *put.TableName)
		assert.Equal(t, "attribute_not_exists(id)", *put.ConditionExpression)
		assert.Equal(t, "390", numberAttr(t, put.Item, "balance_after"))

		guard := captured.TransactItems[2].Update
		assert.Equal(t, "tournaments", *guard.TableName)
		assert.Contains(t, *guard.UpdateExpression, "#pd[2].#prev = :next")
		assert.Contains(t, *guard.ConditionExpression, "attribute_not_exists(#pd[2].#prev)")
		mockClient.AssertExpectations(t)
	})

	t.Run("Clamped Debit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil).Once()

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.TransactWriteItemsInput) }).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		result, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.WINNING,
			Delta:   -100,
			Txn:     &models.Transaction{Type: models.MANUAL_DEBIT, Amount: 100},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(-40), result.Applied)
		assert.Equal(t, int64(60), result.Shortfall)
		assert.Equal(t, int64(0), result.Wallet.WinningBalance)
		assert.Equal(t, int64(100), result.Wallet.WalletBalance)
		assert.Equal(t, int64(0), result.Wallet.TotalWinnings)
		assert.Equal(t, int64(60), result.Txn.Shortfall)

		walletUpdate := captured.TransactItems[0].Update
		assert.Equal(t, "-40", numberAttr(t, walletUpdate.ExpressionAttributeValues, ":applied"))
		assert.NotContains(t, *walletUpdate.UpdateExpression, "total_winnings")
		assert.Equal(t, "100", numberAttr(t, captured.TransactItems[1].Put.Item, "balance_after"))
		mockClient.AssertExpectations(t)
	})

	t.Run("Overflowing Credit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		full := models.Wallet{UserId: "user1", WalletBalance: math.MaxInt64, BonusBalance: math.MaxInt64, Version: 3}
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, full), nil).Once()

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.BONUS,
			Delta:   1,
			Txn:     &models.Transaction{Type: models.MANUAL_CREDIT, Amount: 1},
		})

		assert.ErrorIs(t, err, models.ErrBalanceOverflow)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Refund Does Not Count As Winnings", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil).Once()

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.TransactWriteItemsInput) }).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		result, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.WINNING,
			Delta:   60,
			Txn:     &models.Transaction{Type: models.REFUND, Amount: 60},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.Wallet.WinningBalance)
		assert.Equal(t, int64(0), result.Wallet.TotalWinnings)
		assert.NotContains(t, *captured.TransactItems[0].Update.UpdateExpression, "total_winnings")
		mockClient.AssertExpectations(t)
	})

	t.Run("Retries On Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		moved := wallet
		moved.DepositedBalance = 150
		moved.WalletBalance = 190
		moved.Version = 8
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, moved), nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("ConditionalCheckFailed", "None")).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
			v := in.TransactItems[0].Update.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN)
			return v.Value == "8"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		result, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.DEPOSITED,
			Delta:   50,
			Txn:     &models.Transaction{Type: models.DEPOSIT, Amount: 50},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(200), result.Wallet.DepositedBalance)
		assert.Equal(t, int64(240), result.Wallet.WalletBalance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Retries Exhausted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("ConditionalCheckFailed"))

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID: "user1", Balance: models.BONUS, Delta: 10,
		})

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", store.MaxRetries+1)
	})

	t.Run("Guard Failed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("None", "None", "ConditionalCheckFailed")).Once()

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID:  "user1",
			Balance: models.DEPOSITED,
			Delta:   500,
			Txn:     &models.Transaction{Type: models.DEPOSIT, Amount: 500},
			Guards: []storage.Guard{storage.DepositTransition{
				RequestID: "dep1", From: models.DEPOSIT_PENDING, To: models.DEPOSIT_APPROVED,
			}},
		})

		assert.ErrorIs(t, err, storage.ErrConditionFailed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Wallet Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID: "ghost", Balance: models.DEPOSITED, Delta: 500,
		})

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Sub-Balance", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID: "user1", Balance: models.SubBalance("cashback"), Delta: 5,
		})

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(walletItem(t, wallet), nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

		store := newTestStore(mockClient)
		_, err := store.ApplyLedgerDelta(context.Background(), storage.LedgerDelta{
			UserID: "user1", Balance: models.DEPOSITED, Delta: 5,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute ledger transaction")
		mockClient.AssertExpectations(t)
	})
}

func TestCommitGuards(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.TransactWriteItemsInput) }).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		err := store.CommitGuards(context.Background(),
			storage.WithdrawalTransition{RequestID: "w1", From: models.WITHDRAWAL_PENDING, To: models.WITHDRAWAL_COMPLETED},
			storage.TransactionTransition{TransactionID: "tx1", From: models.PENDING, To: models.COMPLETED, Description: "Withdrawal Completed - UPI"},
		)

		require.NoError(t, err)
		require.Len(t, captured.TransactItems, 2)
		request := captured.TransactItems[0].Update
		assert.Equal(t, "withdrawals", *request.TableName)
		assert.Contains(t, *request.UpdateExpression, "completed_at = :at")
		txn := captured.TransactItems[1].Update
		assert.Equal(t, "transactions", *txn.TableName)
		assert.Equal(t, "#status = :from", *txn.ConditionExpression)
		assert.Equal(t, "description", txn.ExpressionAttributeNames["#desc"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Rejection Stamps Reason", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.TransactWriteItemsInput) }).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := newTestStore(mockClient)
		err := store.CommitGuards(context.Background(),
			storage.DepositTransition{RequestID: "d1", From: models.DEPOSIT_PENDING, To: models.DEPOSIT_REJECTED, Reason: "bad UTR"},
		)

		require.NoError(t, err)
		update := captured.TransactItems[0].Update
		assert.True(t, strings.Contains(*update.UpdateExpression, "reject_reason = :reason"))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "bad UTR"}, update.ExpressionAttributeValues[":reason"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Condition Failed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled("ConditionalCheckFailed")).Once()

		store := newTestStore(mockClient)
		err := store.CommitGuards(context.Background(), storage.LotteryDraw{LotteryID: "l1", WinnerID: "user1"})

		assert.ErrorIs(t, err, storage.ErrConditionFailed)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Guards", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := newTestStore(mockClient)
		assert.NoError(t, store.CommitGuards(context.Background()))
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}

func TestParticipantSettlementGuard(t *testing.T) {
	store := newTestStore(new(mocks.DynamoDBAPI))

	t.Run("Settled Before", func(t *testing.T) {
		item, err := store.guardItem(storage.ParticipantSettlement{
			TournamentID: "t1", Index: 0, ParticipantID: "p1", Previous: 100, Next: 60, Kills: 2,
		}, testNow)

		require.NoError(t, err)
		assert.Equal(t, "#status <> :cancelled AND #pd[0].#pid = :pid AND (#pd[0].#prev = :prev)", *item.Update.ConditionExpression)
		assert.Equal(t, "100", numberAttr(t, item.Update.ExpressionAttributeValues, ":prev"))
		assert.Equal(t, "60", numberAttr(t, item.Update.ExpressionAttributeValues, ":next"))
	})

	t.Run("Refund Guard", func(t *testing.T) {
		item, err := store.guardItem(storage.ParticipantRefund{TournamentID: "t1", Index: 4, ParticipantID: "p5"}, testNow)

		require.NoError(t, err)
		assert.Equal(t, "#status = :cancelled AND #pd[4].#pid = :pid AND attribute_not_exists(#pd[4].#refunded)", *item.Update.ConditionExpression)
	})
}
