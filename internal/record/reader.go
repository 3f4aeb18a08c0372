// Package record decodes batch input files into domain transactions and
// encodes ledger snapshots back out. Any structural failure here aborts the
// whole run; per-record recovery only exists for semantic rejections inside
// the ledger.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
)

// row is the raw shape of one input line. The tags cover structure only;
// semantic checks (balances, dispute targets) belong to the ledger.
type row struct {
	Kind   string `validate:"required,oneof=deposit withdrawal dispute resolve chargeback"`
	Client string `validate:"required,number"`
	Tx     string `validate:"required,number"`
	Amount string `validate:"omitempty"`
}

// Reader streams transactions from CSV input: header `type,client,tx,amount`,
// amount empty or omitted for dispute lifecycle records, arbitrary whitespace
// around fields.
type Reader struct {
	csv      *csv.Reader
	validate *validator.Validate
	line     int
}

// NewReader wraps r in a streaming transaction decoder.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the amount column may be omitted entirely
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{csv: cr, validate: validator.New()}
}

// Next returns the next transaction, or io.EOF at end of input. Any other
// error is fatal to the run.
func (r *Reader) Next() (domain.Transaction, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return domain.Transaction{}, io.EOF
			}
			return domain.Transaction{}, fmt.Errorf("read input: %w", err)
		}
		r.line++

		if r.line == 1 && isHeader(fields) {
			continue
		}
		return r.decode(fields)
	}
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && strings.TrimSpace(fields[0]) == "type"
}

func (r *Reader) decode(fields []string) (domain.Transaction, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return domain.Transaction{}, fmt.Errorf("line %d: expected 3 or 4 fields, got %d", r.line, len(fields))
	}

	raw := row{
		Kind:   strings.TrimSpace(fields[0]),
		Client: strings.TrimSpace(fields[1]),
		Tx:     strings.TrimSpace(fields[2]),
	}
	if len(fields) == 4 {
		raw.Amount = strings.TrimSpace(fields[3])
	}

	if err := r.validate.Struct(raw); err != nil {
		return domain.Transaction{}, fmt.Errorf("line %d: %w", r.line, err)
	}

	client, err := strconv.ParseUint(raw.Client, 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("line %d: client id: %w", r.line, err)
	}

	txID, err := strconv.ParseUint(raw.Tx, 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("line %d: tx id: %w", r.line, err)
	}

	tx := domain.Transaction{
		Kind:   domain.Kind(raw.Kind),
		Client: domain.ClientID(client),
		Tx:     domain.TxID(txID),
	}

	if raw.Amount != "" {
		amount, err := decimal.NewFromString(raw.Amount)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("line %d: amount: %w", r.line, err)
		}
		tx.Amount = decimal.NewNullDecimal(amount)
	}

	return tx, nil
}
