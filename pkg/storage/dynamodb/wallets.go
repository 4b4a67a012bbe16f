package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

// ErrInconsistentWallet is returned when a new wallet's total does not match its sub-balances.
var ErrInconsistentWallet = errors.New("wallet total does not match sub-balances")

// CreateWallet creates a new wallet record in DynamoDB.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if !wallet.Consistent() {
		return nil, ErrInconsistentWallet
	}
	now := time.Now().UTC()
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = now
	}
	wallet.UpdatedAt = now
	if wallet.Version == 0 {
		wallet.Version = 1
	}

	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Users),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("wallet for user ID %s: %w", wallet.UserId, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves a user's wallet from DynamoDB by their user ID.
func (s *Store) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	return s.getWallet(ctx, userID, false)
}

func (s *Store) getWallet(ctx context.Context, userID string, consistent bool) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.getItem(ctx, s.Tables.Users, "user_id", userID, consistent, &wallet); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("wallet for user ID %s: %w", userID, err)
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// ListWallets retrieves all wallets from DynamoDB, following scan pages.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	var (
		wallets  []models.Wallet
		startKey map[string]types.AttributeValue
	)
	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.Tables.Users),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallets table: %w", err)
		}

		var page []models.Wallet
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
		}
		wallets = append(wallets, page...)

		if len(result.LastEvaluatedKey) == 0 {
			return wallets, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
