package dynamodb

import (
	"context"
	"errors"
	"testing"

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

var testTables = Tables{
	Users:        "users",
	Transactions: "transactions",
	Deposits:     "deposit_requests",
	Withdrawals:  "withdrawals",
	Tournaments:  "tournaments",
	Lotteries:    "lotteries",
}

func newTestStore(client DynamoDBAPI) *Store {
	store := New(client, testTables)
	store.RetryDelay = 0
	return store
}

func TestCreateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		wallet := &models.Wallet{UserId: "test-user", WalletBalance: 100, BonusBalance: 100}
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		createdWallet, err := store.CreateWallet(context.Background(), wallet)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), createdWallet.Version)
		assert.False(t, createdWallet.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := newTestStore(mockClient)
		_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user"})

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Inconsistent Balances", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := newTestStore(mockClient)
		_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user", WalletBalance: 10})

		assert.ErrorIs(t, err, ErrInconsistentWallet)
		mockClient.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.CreateWallet(context.Background(), &models.Wallet{UserId: "test-user"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create wallet in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestGetWallet(t *testing.T) {
	userID := "test-user"
	wallet := &models.Wallet{UserId: userID, WalletBalance: 100, DepositedBalance: 100, Version: 3}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		walletAV, _ := attributevalue.MarshalMap(wallet)
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "users"
		})).Return(&dynamodb.GetItemOutput{Item: walletAV}, nil)

		store := newTestStore(mockClient)
		retrievedWallet, err := store.GetWallet(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, wallet.UserId, retrievedWallet.UserId)
		assert.Equal(t, wallet.DepositedBalance, retrievedWallet.DepositedBalance)
		assert.Equal(t, wallet.Version, retrievedWallet.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := newTestStore(mockClient)
		_, err := store.GetWallet(context.Background(), userID)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Contains(t, err.Error(), "wallet for user ID test-user")
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.GetWallet(context.Background(), userID)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get wallet")
		mockClient.AssertExpectations(t)
	})
}

func TestListWallets(t *testing.T) {
	t.Run("Follows Pages", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		first, _ := attributevalue.MarshalMap(models.Wallet{UserId: "a"})
		second, _ := attributevalue.MarshalMap(models.Wallet{UserId: "b"})
		lastKey := map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: "a"}}

		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
			return in.ExclusiveStartKey == nil
		})).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
			return in.ExclusiveStartKey != nil
		})).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{second}}, nil).Once()

		store := newTestStore(mockClient)
		wallets, err := store.ListWallets(context.Background())

		require.NoError(t, err)
		require.Len(t, wallets, 2)
		assert.Equal(t, "a", wallets[0].UserId)
		assert.Equal(t, "b", wallets[1].UserId)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		store := newTestStore(mockClient)
		_, err := store.ListWallets(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan wallets table")
		mockClient.AssertExpectations(t)
	})
}
