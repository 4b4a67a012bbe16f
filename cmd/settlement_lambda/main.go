package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/arena-ledger/pkg/bootstrap"
	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/scheduler"
	"github.com/chris/arena-ledger/pkg/settlement"
)

// jobHandler re-drives interrupted bulk settlements. Messages whose pass is
// still incomplete are reported back as batch item failures, so SQS redelivers
// them after the visibility timeout and eventually moves them to the DLQ.
type jobHandler struct {
	settler settlement.Settler
	logger  *slog.Logger
}

func (h *jobHandler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		logger := h.logger.With("message_id", message.MessageId)

		job, err := scheduler.ParseRetryJob(message.Body)
		if err != nil {
			// Redelivery cannot fix a malformed body.
			logger.Error("dropping malformed retry job", "error", err)
			continue
		}
		logger = logger.With(
			"tournament_id", job.TournamentID,
			"kind", job.Kind,
			"receive_count", message.Attributes["ApproximateReceiveCount"],
		)
		logger.Info("Processing retry job")

		if err := h.resume(ctx, job); err != nil {
			if h.done(err) {
				logger.Info("nothing left to settle", "reason", err)
				continue
			}
			logger.Error("settlement still incomplete", "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		logger.Info("Successfully settled tournament")
	}
	return resp, nil
}

func (h *jobHandler) resume(ctx context.Context, job scheduler.RetryJob) error {
	var (
		report *settlement.BulkReport
		err    error
	)
	switch job.Kind {
	case models.SETTLE_RESULT:
		report, err = h.settler.ResumeResult(ctx, job.TournamentID)
	case models.SETTLE_REFUND:
		report, err = h.settler.ResumeCancellation(ctx, job.TournamentID)
	default:
		return &settlement.Error{Code: settlement.VALIDATION, Message: "unknown settlement kind " + string(job.Kind)}
	}
	if report != nil {
		h.logger.Info("settlement pass finished",
			"tournament_id", job.TournamentID,
			"succeeded", report.Succeeded,
			"failed", report.Failed,
			"skipped", report.Skipped,
		)
	}
	return err
}

// done reports whether err means retrying the job can never succeed or is unnecessary.
func (h *jobHandler) done(err error) bool {
	return errors.Is(err, settlement.ErrInvalidState) ||
		errors.Is(err, settlement.ErrNotFound) ||
		errors.Is(err, settlement.ErrValidation)
}

func main() {
	deps, err := bootstrap.Load(context.Background())
	if err != nil {
		slog.Error("failed to initialise settlement lambda", "error", err)
		os.Exit(1)
	}

	// Redelivery is driven by SQS here, so the service never enqueues on resume.
	h := &jobHandler{settler: deps.Settlement(), logger: deps.Logger}
	lambda.Start(h.HandleRequest)
}
