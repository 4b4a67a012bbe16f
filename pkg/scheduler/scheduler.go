package scheduler

import (
	"context"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
)

// RetryJob asks for an unfinished bulk settlement of a tournament to be re-run.
// Delivery attempts are counted by the queue, not carried in the job.
type RetryJob struct {
	Kind         models.SettlementKind `json:"kind"`
	TournamentID string                `json:"tournament_id"`
}

// Scheduler defines the interface for a component that schedules a retry for later processing.
type Scheduler interface {
	// ScheduleRetry enqueues a job to be delivered after delay.
	ScheduleRetry(ctx context.Context, job RetryJob, delay time.Duration) error
}
