package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

// guardItem translates a guard into a conditional update of the document it protects.
func (s *Store) guardItem(g storage.Guard, now time.Time) (types.TransactWriteItem, error) {
	switch g := g.(type) {
	case storage.TransactionTransition:
		update := "SET #status = :to, updated_at = :now"
		values := map[string]types.AttributeValue{
			":to":   marshalString(string(g.To)),
			":from": marshalString(string(g.From)),
			":now":  marshalTime(now),
		}
		names := map[string]string{"#status": "status"}
		if g.Description != "" {
			update += ", #desc = :desc"
			names["#desc"] = "description"
			values[":desc"] = marshalString(g.Description)
		}
		return types.TransactWriteItem{Update: &types.Update{
			TableName:                 aws.String(s.Tables.Transactions),
			Key:                       stringKey("id", g.TransactionID),
			UpdateExpression:          aws.String(update),
			ConditionExpression:       aws.String("#status = :from"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		}}, nil

	case storage.DepositTransition:
		return s.requestTransition(s.Tables.Deposits, g.RequestID, string(g.From), string(g.To),
			g.To == models.DEPOSIT_APPROVED, "approved_at", g.Reason, atOr(g.At, now)), nil

	case storage.WithdrawalTransition:
		return s.requestTransition(s.Tables.Withdrawals, g.RequestID, string(g.From), string(g.To),
			g.To == models.WITHDRAWAL_COMPLETED, "completed_at", g.Reason, atOr(g.At, now)), nil

	case storage.ParticipantSettlement:
		p := fmt.Sprintf("#pd[%d]", g.Index)
		condition := fmt.Sprintf("#status <> :cancelled AND %[1]s.#pid = :pid AND (%[1]s.#prev = :prev", p)
		if g.Previous == 0 {
			condition += fmt.Sprintf(" OR attribute_not_exists(%s.#prev)", p)
		}
		condition += ")"
		return types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(s.Tables.Tournaments),
			Key:                 stringKey("id", g.TournamentID),
			UpdateExpression:    aws.String(fmt.Sprintf("SET %[1]s.#prev = :next, %[1]s.#kills = :kills, updated_at = :now", p)),
			ConditionExpression: aws.String(condition),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
				"#pd":     "participant_details",
				"#pid":    "participant_id",
				"#prev":   "previous_earnings",
				"#kills":  "kills",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cancelled": marshalString(string(models.CANCELLED)),
				":pid":       marshalString(g.ParticipantID),
				":prev":      marshalInt(g.Previous),
				":next":      marshalInt(g.Next),
				":kills":     marshalInt(int64(g.Kills)),
				":now":       marshalTime(now),
			},
		}}, nil

	case storage.ParticipantRefund:
		p := fmt.Sprintf("#pd[%d]", g.Index)
		return types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(s.Tables.Tournaments),
			Key:                 stringKey("id", g.TournamentID),
			UpdateExpression:    aws.String(fmt.Sprintf("SET %s.#refunded = :at, updated_at = :now", p)),
			ConditionExpression: aws.String(fmt.Sprintf("#status = :cancelled AND %[1]s.#pid = :pid AND attribute_not_exists(%[1]s.#refunded)", p)),
			ExpressionAttributeNames: map[string]string{
				"#status":   "status",
				"#pd":       "participant_details",
				"#pid":      "participant_id",
				"#refunded": "refunded_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cancelled": marshalString(string(models.CANCELLED)),
				":pid":       marshalString(g.ParticipantID),
				":at":        marshalTime(atOr(g.At, now)),
				":now":       marshalTime(now),
			},
		}}, nil

	case storage.LotteryDraw:
		return types.TransactWriteItem{Update: &types.Update{
			TableName: aws.String(s.Tables.Lotteries),
			Key:       stringKey("id", g.LotteryID),
			UpdateExpression: aws.String("SET winner_id = :winner, winner_name = :name, winner_email = :email, " +
				"#status = :finished, finished_at = :at"),
			ConditionExpression: aws.String("attribute_exists(id) AND #status <> :finished AND attribute_not_exists(winner_id)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":winner":   marshalString(g.WinnerID),
				":name":     marshalString(g.WinnerName),
				":email":    marshalString(g.WinnerEmail),
				":finished": marshalString(string(models.LOTTERY_FINISHED)),
				":at":       marshalTime(atOr(g.At, now)),
			},
		}}, nil
	}

	return types.TransactWriteItem{}, fmt.Errorf("unsupported guard %T", g)
}

// requestTransition settles a deposit or withdrawal request still in from.
func (s *Store) requestTransition(table, id, from, to string, success bool, successAttr, reason string, at time.Time) types.TransactWriteItem {
	update := "SET #status = :to, "
	values := map[string]types.AttributeValue{
		":to":   marshalString(to),
		":from": marshalString(from),
		":at":   marshalTime(at),
	}
	if success {
		update += successAttr + " = :at"
	} else {
		update += "rejected_at = :at, reject_reason = :reason"
		values[":reason"] = marshalString(reason)
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(table),
		Key:                       stringKey("id", id),
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("#status = :from"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	}}
}

func atOr(at, fallback time.Time) time.Time {
	if at.IsZero() {
		return fallback
	}
	return at
}
