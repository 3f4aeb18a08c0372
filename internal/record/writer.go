package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iho/payengine/internal/ledger"
)

// Writer encodes account snapshots as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w in a snapshot encoder.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSnapshot writes the header followed by one row per account. Balances
// are rendered exactly as stored; no rounding is applied.
func (w *Writer) WriteSnapshot(views []ledger.AccountView) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, v := range views {
		record := []string{
			strconv.FormatUint(uint64(v.Client), 10),
			v.Available.String(),
			v.Held.String(),
			v.Total.String(),
			strconv.FormatBool(v.Locked),
		}
		if err := w.csv.Write(record); err != nil {
			return fmt.Errorf("write client %d: %w", v.Client, err)
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}
