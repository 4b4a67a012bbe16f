package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/notify"
	"github.com/chris/arena-ledger/pkg/storage"
)

// linkedTransaction finds the pending transaction filed with a request, if any.
func (s *Service) linkedTransaction(ctx context.Context, requestID string) (*models.Transaction, error) {
	tx, err := s.store.FindPendingTransaction(ctx, requestID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up transaction for request %s: %w", requestID, err)
	}
	return tx, nil
}

// ApproveDeposit credits the deposited balance and settles the request and its
// pending transaction in the same write.
func (s *Service) ApproveDeposit(ctx context.Context, requestID string) (*models.DepositRequest, error) {
	what := "deposit request " + requestID
	req, err := s.store.GetDepositRequest(ctx, requestID)
	if err != nil {
		return nil, classify(err, what)
	}
	if req.Status != models.DEPOSIT_PENDING {
		return nil, invalidState("%s is already %s", what, req.Status)
	}
	if req.Amount <= 0 {
		return nil, validation("%s has a non-positive amount", what)
	}

	linked, err := s.linkedTransaction(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	description := "Deposit Approved - UTR: " + req.UTR
	guards := []storage.Guard{storage.DepositTransition{
		RequestID: req.Id,
		From:      models.DEPOSIT_PENDING,
		To:        models.DEPOSIT_APPROVED,
		At:        now,
	}}

	// The console files a pending transaction with every request; without one
	// the credit still needs an audit entry.
	var txn *models.Transaction
	if linked != nil {
		guards = append(guards, storage.TransactionTransition{
			TransactionID: linked.Id,
			From:          models.PENDING,
			To:            models.COMPLETED,
			Description:   description,
			At:            now,
		})
	} else {
		txn = &models.Transaction{
			UserName:    req.UserName,
			UserEmail:   req.UserEmail,
			Type:        models.DEPOSIT,
			Amount:      req.Amount,
			Description: description,
			ReferenceId: req.Id,
		}
	}

	_, err = s.apply(ctx, storage.LedgerDelta{
		UserID:  req.UserId,
		Balance: models.DEPOSITED,
		Delta:   req.Amount,
		Txn:     txn,
		Guards:  guards,
	})
	if err != nil {
		return nil, ledgerError(err, req.UserId, what)
	}

	req.Status = models.DEPOSIT_APPROVED
	req.ApprovedAt = &now
	s.notifyUser(ctx, req.UserId, notify.Message{
		Title: "Deposit Approved",
		Body:  fmt.Sprintf("%s has been added to your wallet.", models.FormatAmount(req.Amount)),
		Data:  map[string]string{"type": "deposit", "request_id": req.Id},
	})
	return req, nil
}

// RejectDeposit closes a pending deposit without touching any balance.
func (s *Service) RejectDeposit(ctx context.Context, requestID, reason string) (*models.DepositRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validation("a rejection reason is required")
	}

	what := "deposit request " + requestID
	req, err := s.store.GetDepositRequest(ctx, requestID)
	if err != nil {
		return nil, classify(err, what)
	}
	if req.Status != models.DEPOSIT_PENDING {
		return nil, invalidState("%s is already %s", what, req.Status)
	}

	linked, err := s.linkedTransaction(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	guards := []storage.Guard{storage.DepositTransition{
		RequestID: req.Id,
		From:      models.DEPOSIT_PENDING,
		To:        models.DEPOSIT_REJECTED,
		Reason:    reason,
		At:        now,
	}}
	if linked != nil {
		guards = append(guards, storage.TransactionTransition{
			TransactionID: linked.Id,
			From:          models.PENDING,
			To:            models.REJECTED,
			Description:   "Deposit Rejected - " + reason,
			At:            now,
		})
	}
	if err := s.store.CommitGuards(ctx, guards...); err != nil {
		return nil, classify(err, what)
	}
	s.logger.InfoContext(ctx, "deposit rejected", "request_id", req.Id, "user_id", req.UserId)

	req.Status = models.DEPOSIT_REJECTED
	req.RejectReason = reason
	req.RejectedAt = &now
	s.notifyUser(ctx, req.UserId, notify.Message{
		Title: "Deposit Rejected",
		Body:  reason,
		Data:  map[string]string{"type": "deposit", "request_id": req.Id},
	})
	return req, nil
}

// ApproveWithdrawal completes a payout. The amount left the wallet when the
// request was filed, so no balance moves.
func (s *Service) ApproveWithdrawal(ctx context.Context, requestID string) (*models.WithdrawalRequest, error) {
	what := "withdrawal request " + requestID
	req, err := s.store.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return nil, classify(err, what)
	}
	if req.Status != models.WITHDRAWAL_PENDING {
		return nil, invalidState("%s is already %s", what, req.Status)
	}

	linked, err := s.linkedTransaction(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	description := "Withdrawal Completed"
	if req.PaymentMethod != "" {
		description += " - " + req.PaymentMethod
	}
	guards := []storage.Guard{storage.WithdrawalTransition{
		RequestID: req.Id,
		From:      models.WITHDRAWAL_PENDING,
		To:        models.WITHDRAWAL_COMPLETED,
		At:        now,
	}}
	if linked != nil {
		guards = append(guards, storage.TransactionTransition{
			TransactionID: linked.Id,
			From:          models.PENDING,
			To:            models.COMPLETED,
			Description:   description,
			At:            now,
		})
	}
	if err := s.store.CommitGuards(ctx, guards...); err != nil {
		return nil, classify(err, what)
	}
	s.logger.InfoContext(ctx, "withdrawal completed", "request_id", req.Id, "user_id", req.UserId)

	req.Status = models.WITHDRAWAL_COMPLETED
	req.CompletedAt = &now
	s.notifyUser(ctx, req.UserId, notify.Message{
		Title: "Withdrawal Completed",
		Body:  fmt.Sprintf("%s has been sent to you.", models.FormatAmount(req.Amount)),
		Data:  map[string]string{"type": "withdrawal", "request_id": req.Id},
	})
	return req, nil
}

// RejectWithdrawal returns the reserved amount to the winning balance with a
// refund entry and rejects the request and its pending transaction.
func (s *Service) RejectWithdrawal(ctx context.Context, requestID, reason string) (*models.WithdrawalRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validation("a rejection reason is required")
	}

	what := "withdrawal request " + requestID
	req, err := s.store.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return nil, classify(err, what)
	}
	if req.Status != models.WITHDRAWAL_PENDING {
		return nil, invalidState("%s is already %s", what, req.Status)
	}
	if req.Amount <= 0 {
		return nil, validation("%s has a non-positive amount", what)
	}

	linked, err := s.linkedTransaction(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	guards := []storage.Guard{storage.WithdrawalTransition{
		RequestID: req.Id,
		From:      models.WITHDRAWAL_PENDING,
		To:        models.WITHDRAWAL_REJECTED,
		Reason:    reason,
		At:        now,
	}}
	if linked != nil {
		guards = append(guards, storage.TransactionTransition{
			TransactionID: linked.Id,
			From:          models.PENDING,
			To:            models.REJECTED,
			Description:   "Withdrawal Rejected - " + reason,
			At:            now,
		})
	}

	_, err = s.apply(ctx, storage.LedgerDelta{
		UserID:  req.UserId,
		Balance: models.WINNING,
		Delta:   req.Amount,
		Txn: &models.Transaction{
			UserName:    req.UserName,
			UserEmail:   req.UserEmail,
			Type:        models.REFUND,
			Amount:      req.Amount,
			Description: "Withdrawal Refund - " + reason,
			ReferenceId: req.Id,
		},
		Guards: guards,
	})
	if err != nil {
		return nil, ledgerError(err, req.UserId, what)
	}

	req.Status = models.WITHDRAWAL_REJECTED
	req.RejectReason = reason
	req.RejectedAt = &now
	s.notifyUser(ctx, req.UserId, notify.Message{
		Title: "Withdrawal Rejected",
		Body:  fmt.Sprintf("%s has been returned to your winnings. %s", models.FormatAmount(req.Amount), reason),
		Data:  map[string]string{"type": "withdrawal", "request_id": req.Id},
	})
	return req, nil
}
