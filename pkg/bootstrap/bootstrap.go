package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/arena-ledger/pkg/config"
	"github.com/chris/arena-ledger/pkg/notify"
	"github.com/chris/arena-ledger/pkg/scheduler"
	"github.com/chris/arena-ledger/pkg/settlement"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/chris/arena-ledger/pkg/storage/dynamodb"
	"github.com/chris/arena-ledger/pkg/storage/memory"
)

// Deps are the collaborators every binary builds from the same configuration.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Store     storage.Storage
	Scheduler scheduler.Scheduler
	Publisher notify.Publisher
}

// NewLogger installs a JSON handler at the configured level as the default logger.
func NewLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

// Load reads configuration and builds the store, scheduler and publisher.
// The AWS SDK is only configured when a driver or queue needs it.
func Load(ctx context.Context) (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := NewLogger(cfg)

	var awsCfg *aws.Config
	if cfg.StorageDriver == config.DriverDynamoDB || cfg.SQSQueueURL != "" {
		c, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		awsCfg = &c
	}

	deps := &Deps{
		Config:    cfg,
		Logger:    logger,
		Publisher: NewPublisher(cfg.FCM),
	}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage; balances are lost on restart")
		deps.Store = memory.New()
	default:
		store := dynamodb.New(awsdynamodb.NewFromConfig(*awsCfg), cfg.Tables)
		store.MaxRetries = cfg.LedgerMaxRetries
		store.RetryDelay = cfg.LedgerRetryDelay
		deps.Store = store
	}

	if cfg.SQSQueueURL != "" {
		deps.Scheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(*awsCfg), cfg.SQSQueueURL)
	} else {
		logger.Warn("SQS_QUEUE_URL not set; interrupted settlements wait for reconciliation")
	}

	return deps, nil
}

// NewPublisher returns an FCM sender when credentials are configured and a
// no-op publisher otherwise.
func NewPublisher(fcm config.FCM) notify.Publisher {
	if !fcm.Enabled() {
		return &notify.NoOpPublisher{}
	}
	account := &notify.ServiceAccount{
		ClientEmail: fcm.ClientEmail,
		PrivateKey:  fcm.PrivateKey,
	}
	return notify.NewFCMSender(fcm.ProjectID, notify.NewTokenCache(account.Fetch, time.Now))
}

// Settlement builds the settlement service over the loaded dependencies.
func (d *Deps) Settlement() *settlement.Service {
	svc := settlement.NewService(d.Store, d.Scheduler, d.Publisher, d.Logger)
	svc.RetryDelay = d.Config.SettlementRetry
	return svc
}
