package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/notify"
	"github.com/chris/arena-ledger/pkg/scheduler"
	"github.com/chris/arena-ledger/pkg/storage"
)

// defaultRetryDelay is how long an interrupted bulk pass waits before it is re-driven.
const defaultRetryDelay = time.Minute

// Settler is every admin action that moves money or settles a request.
type Settler interface {
	ApproveDeposit(ctx context.Context, requestID string) (*models.DepositRequest, error)
	RejectDeposit(ctx context.Context, requestID, reason string) (*models.DepositRequest, error)
	ApproveWithdrawal(ctx context.Context, requestID string) (*models.WithdrawalRequest, error)
	RejectWithdrawal(ctx context.Context, requestID, reason string) (*models.WithdrawalRequest, error)
	SelectWinner(ctx context.Context, lotteryID, userID string) (*models.Lottery, error)
	AnnounceResult(ctx context.Context, tournamentID string, results []ParticipantResult, winners models.Winners) (*BulkReport, error)
	PreviewResult(ctx context.Context, tournamentID string, results []ParticipantResult, winners models.Winners) ([]EarningsLine, error)
	ResumeResult(ctx context.Context, tournamentID string) (*BulkReport, error)
	CancelMatch(ctx context.Context, tournamentID string) (*BulkReport, error)
	ResumeCancellation(ctx context.Context, tournamentID string) (*BulkReport, error)
	AdjustFunds(ctx context.Context, adj Adjustment) (*storage.LedgerResult, error)
}

// Service settles admin actions against the store. Every balance change goes
// through storage.LedgerWriter together with the state transition it belongs to.
type Service struct {
	store     storage.Storage
	scheduler scheduler.Scheduler
	publisher notify.Publisher
	logger    *slog.Logger

	// Now is the clock used for every timestamp the service writes.
	Now func() time.Time
	// RetryDelay is the delay before an interrupted bulk pass is re-driven.
	RetryDelay time.Duration
}

// NewService creates a Service. sched may be nil, in which case interrupted
// bulk passes are left for the reconciliation job.
func NewService(store storage.Storage, sched scheduler.Scheduler, publisher notify.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = &notify.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:      store,
		scheduler:  sched,
		publisher:  publisher,
		logger:     logger,
		Now:        func() time.Time { return time.Now().UTC() },
		RetryDelay: defaultRetryDelay,
	}
}

// Make sure we conform to the interface
var _ Settler = (*Service)(nil)

// apply commits one ledger delta and logs what it did.
func (s *Service) apply(ctx context.Context, d storage.LedgerDelta) (*storage.LedgerResult, error) {
	res, err := s.store.ApplyLedgerDelta(ctx, d)
	if err != nil {
		return nil, err
	}
	attrs := []any{
		"user_id", d.UserID,
		"balance", d.Balance,
		"delta", d.Delta,
		"applied", res.Applied,
	}
	if res.Txn != nil {
		attrs = append(attrs, "transaction_id", res.Txn.Id, "type", res.Txn.Type)
	}
	s.logger.InfoContext(ctx, "ledger delta applied", attrs...)
	if res.Shortfall > 0 {
		s.logger.WarnContext(ctx, "debit clamped at zero", "user_id", d.UserID, "balance", d.Balance, "shortfall", res.Shortfall)
	}
	return res, nil
}

// scheduleRetry asks for a bulk pass to be re-driven later. Failure to enqueue
// is logged only; the pending marker on the tournament remains for reconciliation.
func (s *Service) scheduleRetry(ctx context.Context, kind models.SettlementKind, tournamentID string) {
	if s.scheduler == nil {
		return
	}
	job := scheduler.RetryJob{Kind: kind, TournamentID: tournamentID}
	if err := s.scheduler.ScheduleRetry(ctx, job, s.RetryDelay); err != nil {
		s.logger.ErrorContext(ctx, "failed to schedule settlement retry", "tournament_id", tournamentID, "kind", kind, "error", err)
	}
}

// notifyUser pushes a message to every device of a user. Delivery never affects settlement.
func (s *Service) notifyUser(ctx context.Context, userID string, message notify.Message) {
	if userID == "" {
		return
	}
	wallet, err := s.store.GetWallet(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load user for notification", "user_id", userID, "error", err)
		return
	}
	if len(wallet.FCMTokens) == 0 {
		return
	}
	result, err := s.publisher.Publish(ctx, wallet.FCMTokens, message)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish notification", "user_id", userID, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "notification published", "user_id", userID, "success", result.Success, "failed", result.Failed)
}
