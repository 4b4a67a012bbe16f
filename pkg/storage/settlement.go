package storage

import (
	"context"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
)

// TournamentStore holds the tournament-level writes of the bulk settlements.
// Per-participant writes are guards committed together with a ledger delta.
type TournamentStore interface {
	GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error)

	// SaveResultIntent records the announced input and flags the tournament as
	// owing a result settlement. Fails with ErrConditionFailed on a cancelled tournament.
	SaveResultIntent(ctx context.Context, tournamentID string, intent models.ResultIntent) error

	// FinalizeResult marks the tournament finished, stores the results snapshot,
	// sets resultAnnouncedAt only if absent and clears the pending intent. Fails
	// with ErrConditionFailed when the tournament is cancelled or the pending
	// intent is no longer intentID.
	FinalizeResult(ctx context.Context, tournamentID, intentID string, results models.Results, at time.Time) error

	// BeginCancellation moves an upcoming or live tournament to cancelled and flags
	// it as owing refunds, in one conditional write. Fails with ErrConditionFailed
	// if the tournament was not upcoming or live.
	BeginCancellation(ctx context.Context, tournamentID string, at time.Time) error

	// CompleteCancellation clears the pending refund flag.
	CompleteCancellation(ctx context.Context, tournamentID string) error

	// ListPendingSettlements returns tournaments still flagged with kind.
	ListPendingSettlements(ctx context.Context, kind models.SettlementKind) ([]models.Tournament, error)
}
