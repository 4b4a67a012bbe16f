package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/chris/arena-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// Config is the runtime configuration shared by the server and the lambdas.
type Config struct {
	HTTPPort            string
	StorageDriver       string
	Tables              dynamodb.Tables
	SQSQueueURL         string
	LedgerMaxRetries    int
	LedgerRetryDelay    time.Duration
	SettlementRetry     time.Duration
	ReconcileStuckAfter time.Duration
	CORSAllowedOrigins  []string
	LogLevel            slog.Level
	FCM                 FCM
}

// FCM holds the service-account credentials used for push notifications.
type FCM struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// Enabled reports whether every credential is present.
func (f FCM) Enabled() bool {
	return f.ProjectID != "" && f.ClientEmail != "" && f.PrivateKey != ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", DriverDynamoDB)
	v.SetDefault("LEDGER_MAX_RETRIES", 3)
	v.SetDefault("LEDGER_RETRY_DELAY", "10ms")
	v.SetDefault("SETTLEMENT_RETRY_DELAY", "1m")
	v.SetDefault("RECONCILE_STUCK_AFTER", "20m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

// Load reads .env, the environment and an optional settlement.yaml, in
// increasing order of precedence for the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetConfigName("settlement")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		HTTPPort:      v.GetString("HTTP_PORT"),
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		Tables: dynamodb.Tables{
			Users:        v.GetString("DYNAMODB_USERS_TABLE_NAME"),
			Transactions: v.GetString("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
			Deposits:     v.GetString("DYNAMODB_DEPOSITS_TABLE_NAME"),
			Withdrawals:  v.GetString("DYNAMODB_WITHDRAWALS_TABLE_NAME"),
			Tournaments:  v.GetString("DYNAMODB_TOURNAMENTS_TABLE_NAME"),
			Lotteries:    v.GetString("DYNAMODB_LOTTERIES_TABLE_NAME"),
		},
		SQSQueueURL:         v.GetString("SQS_QUEUE_URL"),
		LedgerMaxRetries:    v.GetInt("LEDGER_MAX_RETRIES"),
		LedgerRetryDelay:    v.GetDuration("LEDGER_RETRY_DELAY"),
		SettlementRetry:     v.GetDuration("SETTLEMENT_RETRY_DELAY"),
		ReconcileStuckAfter: v.GetDuration("RECONCILE_STUCK_AFTER"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		FCM: FCM{
			ProjectID:   v.GetString("FCM_PROJECT_ID"),
			ClientEmail: v.GetString("FCM_CLIENT_EMAIL"),
			// Keys pasted into env files carry escaped newlines.
			PrivateKey: strings.ReplaceAll(v.GetString("FCM_PRIVATE_KEY"), `\n`, "\n"),
		},
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory:
	case DriverDynamoDB:
		var missing []string
		for name, table := range map[string]string{
			"DYNAMODB_USERS_TABLE_NAME":        c.Tables.Users,
			"DYNAMODB_TRANSACTIONS_TABLE_NAME": c.Tables.Transactions,
			"DYNAMODB_DEPOSITS_TABLE_NAME":     c.Tables.Deposits,
			"DYNAMODB_WITHDRAWALS_TABLE_NAME":  c.Tables.Withdrawals,
			"DYNAMODB_TOURNAMENTS_TABLE_NAME":  c.Tables.Tournaments,
			"DYNAMODB_LOTTERIES_TABLE_NAME":    c.Tables.Lotteries,
		} {
			if table == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("missing table names for the dynamodb driver: %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.LedgerMaxRetries < 0 {
		return errors.New("LEDGER_MAX_RETRIES must not be negative")
	}
	if c.ReconcileStuckAfter <= 0 {
		return errors.New("RECONCILE_STUCK_AFTER must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
