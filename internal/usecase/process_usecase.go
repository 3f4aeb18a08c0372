package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/ledger"
)

// Source yields transaction records in input order. Next returns io.EOF when
// the stream is exhausted; any other error aborts the run.
type Source interface {
	Next() (domain.Transaction, error)
}

// Sink receives the final snapshot.
type Sink interface {
	WriteSnapshot(views []ledger.AccountView) error
}

// Stats summarizes one processing run.
type Stats struct {
	Records  int
	Accounts int
}

// ProcessUseCase streams a batch of transactions through the ledger and
// writes the final snapshot.
type ProcessUseCase struct {
	ledger *ledger.Ledger
	log    zerolog.Logger
}

// NewProcessUseCase creates a new ProcessUseCase.
func NewProcessUseCase(l *ledger.Ledger, log zerolog.Logger) *ProcessUseCase {
	return &ProcessUseCase{
		ledger: l,
		log:    log,
	}
}

// Run consumes src to EOF, applying every record in arrival order, then
// writes the snapshot to sink. A decode error from src fails the run before
// any output is produced; ctx cancellation is honored between records.
func (uc *ProcessUseCase) Run(ctx context.Context, src Source, sink Sink) (Stats, error) {
	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		tx, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("decode transaction: %w", err)
		}

		uc.ledger.Apply(tx)
		stats.Records++
	}

	views := uc.ledger.Snapshot()
	stats.Accounts = len(views)

	if err := sink.WriteSnapshot(views); err != nil {
		return stats, fmt.Errorf("write snapshot: %w", err)
	}

	uc.log.Info().
		Int("records", stats.Records).
		Int("accounts", stats.Accounts).
		Msg("batch processed")

	return stats, nil
}
