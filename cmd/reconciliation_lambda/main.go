package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/arena-ledger/pkg/bootstrap"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/scheduler"
)

// reconcileStore is what reconciliation reads.
type reconcileStore interface {
	ListPendingSettlements(ctx context.Context, kind models.SettlementKind) ([]models.Tournament, error)
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}

// Summary is returned to the scheduler that invoked the lambda.
type Summary struct {
	Requeued          int      `json:"requeued"`
	RequeueFailures   int      `json:"requeue_failures"`
	WalletsAudited    int      `json:"wallets_audited"`
	InconsistentUsers []string `json:"inconsistent_users,omitempty"`
}

type reconciler struct {
	store      reconcileStore
	scheduler  scheduler.Scheduler
	stuckAfter time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// HandleRequest is triggered by an EventBridge Schedule.
func (r *reconciler) HandleRequest(ctx context.Context) (*Summary, error) {
	r.logger.Info("Starting reconciliation of unfinished settlements")

	summary := &Summary{}
	var errs []error
	for _, kind := range []models.SettlementKind{models.SETTLE_RESULT, models.SETTLE_REFUND} {
		if err := r.requeueStuck(ctx, kind, summary); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.audit(ctx, summary); err != nil {
		errs = append(errs, err)
	}

	r.logger.Info("Reconciliation finished",
		"requeued", summary.Requeued,
		"requeue_failures", summary.RequeueFailures,
		"wallets_audited", summary.WalletsAudited,
		"inconsistent", len(summary.InconsistentUsers),
	)
	return summary, errors.Join(errs...)
}

// stuckSince is when the pending pass was last started or advanced.
func stuckSince(t models.Tournament) time.Time {
	if t.SettlementPending == models.SETTLE_RESULT && t.PendingResult != nil && t.PendingResult.RequestedAt.After(t.UpdatedAt) {
		return t.PendingResult.RequestedAt
	}
	return t.UpdatedAt
}

func (r *reconciler) requeueStuck(ctx context.Context, kind models.SettlementKind, summary *Summary) error {
	pending, err := r.store.ListPendingSettlements(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to list pending %s settlements: %w", kind, err)
	}

	for _, t := range pending {
		age := r.now().Sub(stuckSince(t))
		if age < r.stuckAfter {
			continue
		}

		job := scheduler.RetryJob{Kind: kind, TournamentID: t.Id}
		if err := r.scheduler.ScheduleRetry(ctx, job, 0); err != nil {
			// One failure should not stop the rest of the batch.
			r.logger.Error("failed to re-enqueue settlement", "tournament_id", t.Id, "kind", kind, "error", err)
			summary.RequeueFailures++
			continue
		}
		r.logger.Info("Re-enqueued stuck settlement", "tournament_id", t.Id, "kind", kind, "age", age.String())
		summary.Requeued++
	}
	return nil
}

// audit checks every wallet's total against its sub-balances. Mismatches are
// reported, never repaired.
func (r *reconciler) audit(ctx context.Context, summary *Summary) error {
	wallets, err := r.store.ListWallets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list wallets for audit: %w", err)
	}
	for i := range wallets {
		w := &wallets[i]
		summary.WalletsAudited++
		if !w.Consistent() {
			r.logger.Error("wallet invariant violated",
				"user_id", w.UserId,
				"wallet_balance", w.WalletBalance,
				"deposited_balance", w.DepositedBalance,
				"winning_balance", w.WinningBalance,
				"bonus_balance", w.BonusBalance,
			)
			summary.InconsistentUsers = append(summary.InconsistentUsers, w.UserId)
		}
	}
	return nil
}

func main() {
	deps, err := bootstrap.Load(context.Background())
	if err != nil {
		slog.Error("failed to initialise reconciliation lambda", "error", err)
		os.Exit(1)
	}
	if deps.Scheduler == nil {
		slog.Error("SQS_QUEUE_URL environment variable not set")
		os.Exit(1)
	}

	r := &reconciler{
		store:      deps.Store,
		scheduler:  deps.Scheduler,
		stuckAfter: deps.Config.ReconcileStuckAfter,
		now:        time.Now,
		logger:     deps.Logger,
	}
	lambda.Start(r.HandleRequest)
}
