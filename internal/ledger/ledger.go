package ledger

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// Policy controls edge-case behavior that the core rules leave open.
type Policy struct {
	// AllowRedispute returns a resolved deposit to the disputable state so a
	// later dispute may reopen it. Off by default: resolved is terminal.
	AllowRedispute bool
}

// AccountView is one row of a snapshot. Held is the sum of the client's
// deposits currently under dispute; Total is Available plus Held.
type AccountView struct {
	Client    domain.ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Ledger consumes transaction records in arrival order and owns every
// account plus the deposit history needed to settle disputes. The whole
// validate-then-mutate sequence of a record runs under one write lock, so a
// concurrent feeder cannot interleave a withdrawal with a dispute on the
// same account.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[domain.ClientID]*domain.Account
	deposits map[domain.TxID]*domain.StoredDeposit
	order    []domain.ClientID

	policy  Policy
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for per-record debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// WithPolicy overrides the default edge-case policy.
func WithPolicy(p Policy) Option {
	return func(l *Ledger) { l.policy = p }
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[domain.ClientID]*domain.Account),
		deposits: make(map[domain.TxID]*domain.StoredDeposit),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Apply processes a single record. Invalid or inapplicable records are
// discarded without mutating balance state; processing always continues.
func (l *Ledger) Apply(tx domain.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.apply(tx); err != nil {
		l.log.Debug().
			Str("kind", string(tx.Kind)).
			Uint16("client", uint16(tx.Client)).
			Uint32("tx", uint32(tx.Tx)).
			Err(err).
			Msg("record discarded")
		if l.metrics != nil {
			l.metrics.RecordsDiscarded.WithLabelValues(string(tx.Kind), reason(err)).Inc()
		}
		return
	}

	if l.metrics != nil {
		l.metrics.RecordsProcessed.WithLabelValues(string(tx.Kind)).Inc()
	}
}

func (l *Ledger) apply(tx domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	switch tx.Kind {
	case domain.KindDeposit:
		return l.deposit(tx)
	case domain.KindWithdrawal:
		return l.withdraw(tx)
	case domain.KindDispute:
		return l.dispute(tx)
	case domain.KindResolve:
		return l.resolve(tx)
	case domain.KindChargeback:
		return l.chargeback(tx)
	default:
		return domain.ErrUnknownKind
	}
}

// account returns the client's account, creating it on first reference.
func (l *Ledger) account(client domain.ClientID) *domain.Account {
	acc, ok := l.accounts[client]
	if !ok {
		acc = domain.NewAccount(client)
		l.accounts[client] = acc
		l.order = append(l.order, client)
		if l.metrics != nil {
			l.metrics.AccountsCreated.Inc()
		}
	}
	return acc
}

func (l *Ledger) deposit(tx domain.Transaction) error {
	acc := l.account(tx.Client)
	if acc.Frozen {
		return domain.ErrAccountFrozen
	}
	if _, ok := l.deposits[tx.Tx]; ok {
		return domain.ErrDuplicateTx
	}

	amount := tx.Amount.Decimal
	acc.Deposit(amount)
	l.deposits[tx.Tx] = &domain.StoredDeposit{
		Client: tx.Client,
		Tx:     tx.Tx,
		Amount: amount,
		State:  domain.DisputeNone,
	}
	return nil
}

func (l *Ledger) withdraw(tx domain.Transaction) error {
	acc := l.account(tx.Client)
	if acc.Frozen {
		return domain.ErrAccountFrozen
	}
	return acc.Withdraw(tx.Amount.Decimal)
}

func (l *Ledger) dispute(tx domain.Transaction) error {
	acc := l.account(tx.Client)
	if acc.Frozen {
		return domain.ErrAccountFrozen
	}

	dep, ok := l.deposits[tx.Tx]
	if !ok {
		return domain.ErrTxNotFound
	}
	if dep.Client != tx.Client {
		return domain.ErrClientMismatch
	}
	// The disputed funds may already be withdrawn; holding them would drive
	// the available balance negative, so the dispute is discarded instead.
	if dep.State == domain.DisputeNone && acc.Available.LessThan(dep.Amount) {
		return domain.ErrInsufficientFunds
	}

	if err := dep.Dispute(); err != nil {
		return err
	}
	acc.Hold(dep.Amount)
	return nil
}

func (l *Ledger) resolve(tx domain.Transaction) error {
	acc := l.account(tx.Client)
	if acc.Frozen {
		return domain.ErrAccountFrozen
	}

	dep, ok := l.deposits[tx.Tx]
	if !ok {
		return domain.ErrTxNotFound
	}
	if dep.Client != tx.Client {
		return domain.ErrClientMismatch
	}

	if err := dep.Resolve(); err != nil {
		return err
	}
	if l.policy.AllowRedispute {
		dep.State = domain.DisputeNone
	}
	acc.Release(dep.Amount)
	return nil
}

func (l *Ledger) chargeback(tx domain.Transaction) error {
	acc := l.account(tx.Client)
	if acc.Frozen {
		return domain.ErrAccountFrozen
	}

	dep, ok := l.deposits[tx.Tx]
	if !ok {
		return domain.ErrTxNotFound
	}
	if dep.Client != tx.Client {
		return domain.ErrClientMismatch
	}

	if err := dep.Chargeback(); err != nil {
		return err
	}
	// Held funds are reversed, not returned to the client. The account is
	// permanently frozen from here on.
	acc.Freeze()
	if l.metrics != nil {
		l.metrics.AccountsFrozen.Inc()
	}
	return nil
}

// Snapshot reports every known account in first-seen order. Held balances
// are derived here by summing the deposits currently under dispute, so they
// always match the true set of open disputes.
func (l *Ledger) Snapshot() []AccountView {
	l.mu.RLock()
	defer l.mu.RUnlock()

	held := make(map[domain.ClientID]decimal.Decimal, len(l.accounts))
	for _, dep := range l.deposits {
		if dep.State == domain.DisputeOpen {
			held[dep.Client] = held[dep.Client].Add(dep.Amount)
		}
	}

	views := make([]AccountView, 0, len(l.order))
	for _, client := range l.order {
		acc := l.accounts[client]
		h := held[client]
		views = append(views, AccountView{
			Client:    client,
			Available: acc.Available,
			Held:      h,
			Total:     acc.Available.Add(h),
			Locked:    acc.Frozen,
		})
	}
	return views
}

// Balance reports a client's available balance and whether the client is
// known to the ledger.
func (l *Ledger) Balance(client domain.ClientID) (decimal.Decimal, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	acc, ok := l.accounts[client]
	if !ok {
		return decimal.Zero, false
	}
	return acc.Available, true
}

// reason maps a rejection to a short metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAmount), errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrAccountFrozen):
		return "frozen"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrDuplicateTx):
		return "duplicate_tx"
	case errors.Is(err, domain.ErrTxNotFound):
		return "tx_not_found"
	case errors.Is(err, domain.ErrClientMismatch):
		return "client_mismatch"
	case errors.Is(err, domain.ErrNotDisputable), errors.Is(err, domain.ErrNotDisputed):
		return "dispute_state"
	default:
		return "other"
	}
}
