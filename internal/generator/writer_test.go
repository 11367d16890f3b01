package generator

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/creatorgen/internal/domain"
)

func TestWriteDocument_RoundTrip(t *testing.T) {
	doc, err := newTestGenerator(t, DefaultConfig()).Generate(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "generated_transactions_30days.json")
	require.NoError(t, WriteDocument(doc, path))

	got, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestEncodeDocument_WireShape(t *testing.T) {
	doc, err := newTestGenerator(t, DefaultConfig()).Generate(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, doc))

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &top))

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"creators", "fans", "metadata", "transactions"}, keys)

	var transactions []map[string]any
	require.NoError(t, json.Unmarshal(top["transactions"], &transactions))
	require.NotEmpty(t, transactions)
	first := transactions[0]
	for _, key := range []string{"id", "timestamp", "channel", "creatorAlias", "fanId", "amount", "isRefunded", "refundTimestamp", "refundAmount"} {
		assert.Contains(t, first, key)
	}
	assert.Nil(t, first["refundTimestamp"])
	assert.Equal(t, false, first["isRefunded"])
}

func TestReadDocument_Errors(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadDocument(bad)
	assert.ErrorContains(t, err, "decode")
}

func TestWriteDocument_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	doc, err := newTestGenerator(t, DefaultConfig()).Generate(context.Background())
	require.NoError(t, err)

	assert.Error(t, WriteDocument(doc, "/dev/full"))
}

func TestWriteTransactionsCSV(t *testing.T) {
	refundedAt := "2025-03-02T10:00:00Z"
	txs := []domain.Transaction{
		{ID: "tx_000001", Timestamp: "2025-03-01T09:00:00Z", Channel: domain.ChannelTips, CreatorAlias: "@ivy_night", FanID: "fan_000001", Amount: 150},
		{ID: "tx_000002", Timestamp: "2025-03-01T10:00:00Z", Channel: domain.ChannelMessages, CreatorAlias: "@ruby_blaze", FanID: "fan_000002", Amount: 80.5, IsRefunded: true, RefundTimestamp: &refundedAt, RefundAmount: 80.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, txs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 rows")
	assert.Equal(t, transactionCSVHeader, records[0])
	assert.Equal(t, []string{"tx_000001", "2025-03-01T09:00:00Z", "tips", "@ivy_night", "fan_000001", "150.00", "false", "", "0.00"}, records[1])
	assert.Equal(t, []string{"tx_000002", "2025-03-01T10:00:00Z", "messages", "@ruby_blaze", "fan_000002", "80.50", "true", refundedAt, "80.50"}, records[2])
}
