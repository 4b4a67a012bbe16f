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
	"github.com/chris/arena-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables names the collections the store reads and writes.
type Tables struct {
	Users        string
	Transactions string
	Deposits     string
	Withdrawals  string
	Tournaments  string
	Lotteries    string
}

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 10 * time.Millisecond
)

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables

	// MaxRetries bounds how often a ledger write is retried after losing the
	// wallet version race.
	MaxRetries int
	RetryDelay time.Duration
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:     client,
		Tables:     tables,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

// getItem loads one document into out, returning storage.ErrNotFound when absent.
func (s *Store) getItem(ctx context.Context, table, keyName, keyValue string, consistent bool, out interface{}) error {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyName, keyValue),
		ConsistentRead: aws.Bool(consistent),
	})
	if err != nil {
		return fmt.Errorf("failed to get item from %s: %w", table, err)
	}
	if result.Item == nil {
		return storage.ErrNotFound
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item from %s: %w", table, err)
	}
	return nil
}

// isConditionFailed reports whether a single-item write was rejected by its condition.
func isConditionFailed(err error) bool {
	var condCheckFailed *types.ConditionalCheckFailedException
	return errors.As(err, &condCheckFailed)
}

func marshalTime(t time.Time) types.AttributeValue {
	av, _ := attributevalue.Marshal(t)
	return av
}

func marshalInt(n int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", n)}
}

func marshalString(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}
