package mocks

import (
	"io"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/ledger"
)

// MockSource is a mock implementation of Source backed by a fixed slice.
type MockSource struct {
	next int
	txs  []domain.Transaction

	NextFunc func() (domain.Transaction, error)
}

func NewMockSource(txs ...domain.Transaction) *MockSource {
	return &MockSource{txs: txs}
}

func (m *MockSource) Next() (domain.Transaction, error) {
	if m.NextFunc != nil {
		return m.NextFunc()
	}
	if m.next >= len(m.txs) {
		return domain.Transaction{}, io.EOF
	}
	tx := m.txs[m.next]
	m.next++
	return tx, nil
}

// MockSink is a mock implementation of Sink that records every snapshot it
// receives.
type MockSink struct {
	Snapshots [][]ledger.AccountView

	WriteSnapshotFunc func(views []ledger.AccountView) error
}

func NewMockSink() *MockSink {
	return &MockSink{}
}

func (m *MockSink) WriteSnapshot(views []ledger.AccountView) error {
	if m.WriteSnapshotFunc != nil {
		return m.WriteSnapshotFunc(views)
	}
	m.Snapshots = append(m.Snapshots, views)
	return nil
}
