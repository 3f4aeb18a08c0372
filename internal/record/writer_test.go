package record_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payengine/internal/ledger"
	"github.com/iho/payengine/internal/record"
)

func TestWriter_WriteSnapshot(t *testing.T) {
	views := []ledger.AccountView{
		{
			Client:    1,
			Available: decimal.RequireFromString("1.5"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1.5"),
		},
		{
			Client:    2,
			Available: decimal.Zero,
			Held:      decimal.RequireFromString("2.0001"),
			Total:     decimal.RequireFromString("2.0001"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, record.NewWriter(&buf).WriteSnapshot(views))

	want := "client,available,held,total,locked\n" +
		"1,1.5,0,1.5,false\n" +
		"2,0,2.0001,2.0001,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_EmptySnapshotStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, record.NewWriter(&buf).WriteSnapshot(nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
