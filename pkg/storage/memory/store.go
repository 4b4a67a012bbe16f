// Package memory is a mutex-guarded in-memory Storage with the same conditional
// semantics as the DynamoDB store. It backs local development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Store keeps every collection in maps behind a single lock.
type Store struct {
	mu           sync.Mutex
	wallets      map[string]*models.Wallet
	transactions map[string]*models.Transaction
	deposits     map[string]*models.DepositRequest
	withdrawals  map[string]*models.WithdrawalRequest
	tournaments  map[string]*models.Tournament
	lotteries    map[string]*models.Lottery

	// InjectFault, when set, is consulted before every ledger write; a non-nil
	// error aborts that write as if the store had failed.
	InjectFault func(d storage.LedgerDelta) error

	now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		wallets:      make(map[string]*models.Wallet),
		transactions: make(map[string]*models.Transaction),
		deposits:     make(map[string]*models.DepositRequest),
		withdrawals:  make(map[string]*models.WithdrawalRequest),
		tournaments:  make(map[string]*models.Tournament),
		lotteries:    make(map[string]*models.Lottery),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ storage.Storage = (*Store)(nil)

func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	if !wallet.Consistent() {
		return nil, fmt.Errorf("wallet for user ID %s has inconsistent balances", wallet.UserId)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[wallet.UserId]; ok {
		return nil, fmt.Errorf("wallet for user ID %s: %w", wallet.UserId, storage.ErrAlreadyExists)
	}
	now := s.now()
	stored := *wallet
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	if stored.Version == 0 {
		stored.Version = 1
	}
	s.wallets[stored.UserId] = &stored
	out := stored
	return &out, nil
}

func (s *Store) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[userID]
	if !ok {
		return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrNotFound)
	}
	out := *w
	return &out, nil
}

func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := make([]models.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		wallets = append(wallets, *w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].UserId < wallets[j].UserId })
	return wallets, nil
}

// PutTransaction seeds a transaction, as the user-facing flows would.
func (s *Store) PutTransaction(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}
	tx.GSI1PK = models.TransactionsPartition
	s.transactions[tx.Id] = &tx
}

func (s *Store) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.transactions[txID]
	if !ok {
		return nil, fmt.Errorf("transaction with ID %s: %w", txID, storage.ErrNotFound)
	}
	out := *tx
	return &out, nil
}

func (s *Store) FindPendingTransaction(ctx context.Context, referenceID string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.sortedTransactions() {
		if tx.ReferenceId == referenceID && tx.Status == models.PENDING {
			out := *tx
			return &out, nil
		}
	}
	return nil, fmt.Errorf("pending transaction for reference %s: %w", referenceID, storage.ErrNotFound)
}

func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	for _, tx := range s.sortedTransactions() {
		if tx.UserId == userID {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}

func (s *Store) ListRecentTransactions(ctx context.Context, limit int32) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var txs []models.Transaction
	for _, tx := range s.sortedTransactions() {
		if limit > 0 && int32(len(txs)) >= limit {
			break
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

// sortedTransactions returns transactions newest first; callers hold the lock.
func (s *Store) sortedTransactions() []*models.Transaction {
	txs := make([]*models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].CreatedAt.Equal(txs[j].CreatedAt) {
			return txs[i].Id > txs[j].Id
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	return txs
}

// PutDepositRequest seeds a deposit request.
func (s *Store) PutDepositRequest(req models.DepositRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deposits[req.Id] = &req
}

func (s *Store) GetDepositRequest(ctx context.Context, requestID string) (*models.DepositRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.deposits[requestID]
	if !ok {
		return nil, fmt.Errorf("deposit request %s: %w", requestID, storage.ErrNotFound)
	}
	out := *req
	return &out, nil
}

// PutWithdrawalRequest seeds a withdrawal request.
func (s *Store) PutWithdrawalRequest(req models.WithdrawalRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withdrawals[req.Id] = &req
}

func (s *Store) GetWithdrawalRequest(ctx context.Context, requestID string) (*models.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.withdrawals[requestID]
	if !ok {
		return nil, fmt.Errorf("withdrawal request %s: %w", requestID, storage.ErrNotFound)
	}
	out := *req
	return &out, nil
}

// PutLottery seeds a lottery.
func (s *Store) PutLottery(l models.Lottery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lotteries[l.Id] = &l
}

func (s *Store) GetLottery(ctx context.Context, lotteryID string) (*models.Lottery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lotteries[lotteryID]
	if !ok {
		return nil, fmt.Errorf("lottery %s: %w", lotteryID, storage.ErrNotFound)
	}
	out := *l
	return &out, nil
}

// PutTournament seeds a tournament.
func (s *Store) PutTournament(t models.Tournament) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tournaments[t.Id] = copyTournament(&t)
}

func (s *Store) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok {
		return nil, fmt.Errorf("tournament %s: %w", tournamentID, storage.ErrNotFound)
	}
	return copyTournament(t), nil
}

func copyTournament(t *models.Tournament) *models.Tournament {
	out := *t
	out.Participants = append([]models.Participant(nil), t.Participants...)
	return &out
}

func (s *Store) SaveResultIntent(ctx context.Context, tournamentID string, intent models.ResultIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok || t.Status == models.CANCELLED {
		return storage.ErrConditionFailed
	}
	t.PendingResult = &intent
	t.SettlementPending = models.SETTLE_RESULT
	t.UpdatedAt = intent.RequestedAt
	return nil
}

func (s *Store) FinalizeResult(ctx context.Context, tournamentID, intentID string, results models.Results, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok || t.Status == models.CANCELLED {
		return storage.ErrConditionFailed
	}
	if t.PendingResult == nil || t.PendingResult.Id != intentID {
		return storage.ErrConditionFailed
	}
	t.Status = models.FINISHED
	t.Results = &results
	if t.ResultAnnouncedAt == nil {
		announced := at
		t.ResultAnnouncedAt = &announced
	}
	t.SettlementPending = ""
	t.PendingResult = nil
	t.UpdatedAt = at
	return nil
}

func (s *Store) BeginCancellation(ctx context.Context, tournamentID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok || (t.Status != models.UPCOMING && t.Status != models.LIVE) {
		return storage.ErrConditionFailed
	}
	cancelledAt := at
	t.Status = models.CANCELLED
	t.CancelledAt = &cancelledAt
	t.SettlementPending = models.SETTLE_REFUND
	t.UpdatedAt = at
	return nil
}

func (s *Store) CompleteCancellation(ctx context.Context, tournamentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok || t.Status != models.CANCELLED {
		return storage.ErrConditionFailed
	}
	t.SettlementPending = ""
	t.UpdatedAt = s.now()
	return nil
}

func (s *Store) ListPendingSettlements(ctx context.Context, kind models.SettlementKind) ([]models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Tournament
	for _, t := range s.tournaments {
		if t.SettlementPending == kind {
			out = append(out, *copyTournament(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

// ApplyLedgerDelta checks every precondition before touching anything, so a
// rejected write leaves no trace.
func (s *Store) ApplyLedgerDelta(ctx context.Context, d storage.LedgerDelta) (*storage.LedgerResult, error) {
	if !d.Balance.Valid() {
		return nil, fmt.Errorf("unknown sub-balance %q", d.Balance)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.InjectFault != nil {
		if err := s.InjectFault(d); err != nil {
			return nil, err
		}
	}

	w, ok := s.wallets[d.UserID]
	if !ok {
		return nil, fmt.Errorf("wallet for user ID %s: %w", d.UserID, storage.ErrNotFound)
	}

	applied, shortfall := storage.Clamp(w.Balance(d.Balance), d.Delta)
	next := *w
	if err := next.Add(d.Balance, applied); err != nil {
		return nil, fmt.Errorf("wallet for user ID %s: %w", d.UserID, err)
	}
	now := s.now()

	var txn *models.Transaction
	if d.Txn != nil {
		copied := *d.Txn
		txn = &copied
		if txn.Id == "" {
			txn.Id = uuid.New().String()
		}
		if _, exists := s.transactions[txn.Id]; exists {
			return nil, fmt.Errorf("transaction %s: %w", txn.Id, storage.ErrConditionFailed)
		}
	}
	for _, g := range d.Guards {
		if err := s.checkGuard(g); err != nil {
			return nil, err
		}
	}

	*w = next
	if d.CountsTowardWinnings(applied) {
		w.TotalWinnings += applied
	}
	w.Version++
	w.UpdatedAt = now

	if txn != nil {
		if txn.UserId == "" {
			txn.UserId = d.UserID
		}
		if txn.WalletType == "" {
			txn.WalletType = d.Balance
		}
		if txn.Status == "" {
			txn.Status = models.COMPLETED
		}
		balanceAfter := w.WalletBalance
		txn.BalanceAfter = &balanceAfter
		txn.Shortfall = shortfall
		txn.CreatedAt = now
		txn.UpdatedAt = now
		txn.GSI1PK = models.TransactionsPartition
		stored := *txn
		s.transactions[txn.Id] = &stored
	}
	for _, g := range d.Guards {
		s.applyGuard(g, now)
	}

	out := *w
	return &storage.LedgerResult{Applied: applied, Shortfall: shortfall, Wallet: &out, Txn: txn}, nil
}

func (s *Store) CommitGuards(ctx context.Context, guards ...storage.Guard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range guards {
		if err := s.checkGuard(g); err != nil {
			return err
		}
	}
	now := s.now()
	for _, g := range guards {
		s.applyGuard(g, now)
	}
	return nil
}
