package mapping

import (
	"fmt"
	"strings"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
)

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optAmount(minor *int64) *api.Amount {
	if minor == nil {
		return nil
	}
	d := models.FromMinor(*minor)
	return &d
}

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		UserId:           wallet.UserId,
		DisplayName:      optString(wallet.DisplayName),
		Email:            optString(wallet.Email),
		WalletBalance:    models.FromMinor(wallet.WalletBalance),
		DepositedBalance: models.FromMinor(wallet.DepositedBalance),
		WinningBalance:   models.FromMinor(wallet.WinningBalance),
		BonusBalance:     models.FromMinor(wallet.BonusBalance),
		TotalWinnings:    models.FromMinor(wallet.TotalWinnings),
		Version:          wallet.Version,
		UpdatedAt:        wallet.UpdatedAt,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	out := &api.Transaction{
		Id:               tx.Id,
		UserId:           tx.UserId,
		UserName:         optString(tx.UserName),
		Type:             api.TransactionType(tx.Type),
		Amount:           models.FromMinor(tx.Amount),
		Status:           api.TransactionStatus(tx.Status),
		Description:      tx.Description,
		ReferenceId:      optString(tx.ReferenceId),
		TournamentId:     optString(tx.TournamentId),
		Kills:            tx.Kills,
		PreviousEarnings: optAmount(tx.PreviousEarnings),
		NewEarnings:      optAmount(tx.NewEarnings),
		BalanceAfter:     optAmount(tx.BalanceAfter),
		Note:             optString(tx.Note),
		CreatedAt:        tx.CreatedAt,
	}
	if tx.WalletType != "" {
		wt := api.WalletType(tx.WalletType)
		out.WalletType = &wt
	}
	if tx.Shortfall != 0 {
		out.Shortfall = optAmount(&tx.Shortfall)
	}
	return out
}

// ToApiTransactions converts a page of ledger entries, keeping their order.
func ToApiTransactions(txs []models.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, len(txs))
	for i := range txs {
		out[i] = ToApiTransaction(&txs[i])
	}
	return out
}

// ToApiDepositRequest converts a domain DepositRequest model to an API DepositRequest model.
func ToApiDepositRequest(req *models.DepositRequest) *api.DepositRequest {
	return &api.DepositRequest{
		Id:           req.Id,
		UserId:       req.UserId,
		Amount:       models.FromMinor(req.Amount),
		Utr:          optString(req.UTR),
		Status:       api.DepositRequestStatus(req.Status),
		RejectReason: optString(req.RejectReason),
		ApprovedAt:   req.ApprovedAt,
		RejectedAt:   req.RejectedAt,
	}
}

// ToApiWithdrawalRequest converts a domain WithdrawalRequest model to an API WithdrawalRequest model.
func ToApiWithdrawalRequest(req *models.WithdrawalRequest) *api.WithdrawalRequest {
	return &api.WithdrawalRequest{
		Id:            req.Id,
		UserId:        req.UserId,
		Amount:        models.FromMinor(req.Amount),
		PaymentMethod: optString(req.PaymentMethod),
		Status:        api.WithdrawalRequestStatus(req.Status),
		RejectReason:  optString(req.RejectReason),
		CompletedAt:   req.CompletedAt,
		RejectedAt:    req.RejectedAt,
	}
}

// ToApiLottery converts a domain Lottery model to an API Lottery model.
func ToApiLottery(l *models.Lottery) *api.Lottery {
	return &api.Lottery{
		Id:          l.Id,
		Title:       l.Title,
		Status:      api.LotteryStatus(l.Status),
		PrizeAmount: models.FromMinor(l.PrizeAmount),
		WinnerId:    optString(l.WinnerId),
		WinnerName:  optString(l.WinnerName),
		FinishedAt:  l.FinishedAt,
	}
}

// ToApiBulkReport converts a settlement report. Failures is omitted when empty.
func ToApiBulkReport(report *settlement.BulkReport) *api.BulkReport {
	out := &api.BulkReport{
		TournamentId: report.TournamentID,
		Succeeded:    report.Succeeded,
		Failed:       report.Failed,
		Skipped:      report.Skipped,
	}
	if len(report.Failures) > 0 {
		failures := make([]api.ParticipantFailure, len(report.Failures))
		for i, f := range report.Failures {
			failures[i] = api.ParticipantFailure{
				ParticipantId: f.ParticipantID,
				UserId:        optString(f.UserID),
				Error:         f.Error,
			}
		}
		out.Failures = &failures
	}
	return out
}

// ToApiEarningsLines converts a result preview.
func ToApiEarningsLines(lines []settlement.EarningsLine) []api.EarningsLine {
	out := make([]api.EarningsLine, len(lines))
	for i, l := range lines {
		out[i] = api.EarningsLine{
			ParticipantId:    l.ParticipantID,
			UserId:           optString(l.UserID),
			Name:             optString(l.Name),
			Kills:            l.Kills,
			PreviousEarnings: models.FromMinor(l.Previous),
			Earnings:         models.FromMinor(l.Earnings),
			Delta:            models.FromMinor(l.Delta),
		}
	}
	return out
}

// ToApiAdjustmentResult converts what a manual adjustment actually did.
func ToApiAdjustmentResult(res *storage.LedgerResult) *api.AdjustmentResult {
	out := &api.AdjustmentResult{
		Wallet:    *ToApiWallet(res.Wallet),
		Applied:   models.FromMinor(res.Applied),
		Shortfall: models.FromMinor(res.Shortfall),
	}
	if res.Txn != nil {
		out.Transaction = ToApiTransaction(res.Txn)
	}
	return out
}

// ToDomainAdjustment converts an API NewAdjustment for the given user.
func ToDomainAdjustment(userID string, adj *api.NewAdjustment) (settlement.Adjustment, error) {
	amount, err := models.ToMinor(adj.Amount)
	if err != nil {
		return settlement.Adjustment{}, fmt.Errorf("invalid amount %s: %w", adj.Amount, err)
	}
	out := settlement.Adjustment{
		UserID:     userID,
		WalletType: models.SubBalance(adj.WalletType),
		Operation:  settlement.Operation(adj.Operation),
		Amount:     amount,
	}
	if adj.Note != nil {
		out.Note = *adj.Note
	}
	return out, nil
}

// ToDomainParticipantResults converts the submitted per-participant kills.
func ToDomainParticipantResults(in []api.ParticipantResult) []settlement.ParticipantResult {
	out := make([]settlement.ParticipantResult, len(in))
	for i, p := range in {
		out[i] = settlement.ParticipantResult{ParticipantID: p.ParticipantId, Kills: p.Kills}
	}
	return out
}

// ToDomainWinners converts the podium references. Blank references are dropped.
func ToDomainWinners(in api.Winners) models.Winners {
	ref := func(s *string) string {
		if s == nil {
			return ""
		}
		return strings.TrimSpace(*s)
	}
	return models.Winners{First: ref(in.First), Second: ref(in.Second), Third: ref(in.Third)}
}
