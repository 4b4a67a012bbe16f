package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

const (
	userIDIndex      = "user_id-created_at-index"
	referenceIDIndex = "reference_id-index"
	ledgerGSI        = "gsi1pk-created_at-index"
)

// GetTransaction retrieves a transaction from DynamoDB by its ID.
func (s *Store) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.getItem(ctx, s.Tables.Transactions, "id", txID, false, &tx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("transaction with ID %s: %w", txID, err)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// FindPendingTransaction returns the pending transaction that references a request.
func (s *Store) FindPendingTransaction(ctx context.Context, referenceID string) (*models.Transaction, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(referenceIDIndex),
		KeyConditionExpression: aws.String("reference_id = :ref"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref":     marshalString(referenceID),
			":pending": marshalString(string(models.PENDING)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for pending transaction: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil, fmt.Errorf("pending transaction for reference %s: %w", referenceID, storage.ErrNotFound)
	}
	return &transactions[0], nil
}

// ListTransactionsByUserID retrieves a user's transactions, newest first.
func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": marshalString(userID),
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for transactions by user ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return transactions, nil
}

// ListRecentTransactions retrieves the most recent transactions across all users.
func (s *Store) ListRecentTransactions(ctx context.Context, limit int32) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Transactions),
		IndexName:              aws.String(ledgerGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": marshalString(models.TransactionsPartition),
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
		Limit:            &limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for recent transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return transactions, nil
}
