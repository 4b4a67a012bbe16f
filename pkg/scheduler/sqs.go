package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// maxDelay is the longest delivery delay SQS accepts.
const maxDelay = 15 * time.Minute

// SQSAPI is the subset of the SQS client the scheduler uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the Scheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Scheduler = (*SQSScheduler)(nil)

// ScheduleRetry sends the job to an SQS queue, delayed by up to fifteen minutes.
func (s *SQSScheduler) ScheduleRetry(ctx context.Context, job RetryJob, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal retry job for SQS: %w", err)
	}

	if delay < 0 {
		delay = 0
	}
	if delay > maxDelay {
		delay = maxDelay
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}

// ParseRetryJob decodes a message body produced by ScheduleRetry.
func ParseRetryJob(body string) (RetryJob, error) {
	var job RetryJob
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		return RetryJob{}, fmt.Errorf("failed to unmarshal retry job: %w", err)
	}
	if job.TournamentID == "" {
		return RetryJob{}, fmt.Errorf("retry job has no tournament ID")
	}
	return job, nil
}
