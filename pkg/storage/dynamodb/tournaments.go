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

// pendingSettlementIndex is sparse: only tournaments owing a bulk pass carry the key.
const pendingSettlementIndex = "settlement_pending-index"

func (s *Store) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	var t models.Tournament
	if err := s.getItem(ctx, s.Tables.Tournaments, "id", tournamentID, true, &t); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("tournament %s: %w", tournamentID, err)
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return &t, nil
}

func (s *Store) SaveResultIntent(ctx context.Context, tournamentID string, intent models.ResultIntent) error {
	intentAV, err := attributevalue.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal result intent: %w", err)
	}

	return s.updateTournament(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Tournaments),
		Key:                 stringKey("id", tournamentID),
		UpdateExpression:    aws.String("SET pending_result = :intent, settlement_pending = :kind, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":intent":    intentAV,
			":kind":      marshalString(string(models.SETTLE_RESULT)),
			":cancelled": marshalString(string(models.CANCELLED)),
			":now":       marshalTime(intent.RequestedAt),
		},
	})
}

func (s *Store) FinalizeResult(ctx context.Context, tournamentID, intentID string, results models.Results, at time.Time) error {
	resultsAV, err := attributevalue.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return s.updateTournament(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Tournaments),
		Key:       stringKey("id", tournamentID),
		UpdateExpression: aws.String("SET #status = :finished, results = :results, " +
			"result_announced_at = if_not_exists(result_announced_at, :at), updated_at = :at " +
			"REMOVE settlement_pending, pending_result"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status <> :cancelled AND pending_result.intent_id = :intent_id"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":finished":  marshalString(string(models.FINISHED)),
			":cancelled": marshalString(string(models.CANCELLED)),
			":intent_id": marshalString(intentID),
			":results":   resultsAV,
			":at":        marshalTime(at),
		},
	})
}

func (s *Store) BeginCancellation(ctx context.Context, tournamentID string, at time.Time) error {
	return s.updateTournament(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Tournaments),
		Key:                 stringKey("id", tournamentID),
		UpdateExpression:    aws.String("SET #status = :cancelled, cancelled_at = :at, settlement_pending = :kind, updated_at = :at"),
		ConditionExpression: aws.String("#status IN (:upcoming, :live)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": marshalString(string(models.CANCELLED)),
			":upcoming":  marshalString(string(models.UPCOMING)),
			":live":      marshalString(string(models.LIVE)),
			":kind":      marshalString(string(models.SETTLE_REFUND)),
			":at":        marshalTime(at),
		},
	})
}

func (s *Store) CompleteCancellation(ctx context.Context, tournamentID string) error {
	return s.updateTournament(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Tournaments),
		Key:                 stringKey("id", tournamentID),
		UpdateExpression:    aws.String("SET updated_at = :now REMOVE settlement_pending"),
		ConditionExpression: aws.String("#status = :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": marshalString(string(models.CANCELLED)),
			":now":       marshalTime(time.Now().UTC()),
		},
	})
}

func (s *Store) updateTournament(ctx context.Context, input *dynamodb.UpdateItemInput) error {
	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		if isConditionFailed(err) {
			return storage.ErrConditionFailed
		}
		return fmt.Errorf("failed to update tournament: %w", err)
	}
	return nil
}

// ListPendingSettlements queries the sparse settlement index for one kind.
func (s *Store) ListPendingSettlements(ctx context.Context, kind models.SettlementKind) ([]models.Tournament, error) {
	var (
		tournaments []models.Tournament
		startKey    map[string]types.AttributeValue
	)
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Tournaments),
			IndexName:              aws.String(pendingSettlementIndex),
			KeyConditionExpression: aws.String("settlement_pending = :kind"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":kind": marshalString(string(kind)),
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query for pending settlements: %w", err)
		}

		var page []models.Tournament
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tournaments: %w", err)
		}
		tournaments = append(tournaments, page...)

		if len(result.LastEvaluatedKey) == 0 {
			return tournaments, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
