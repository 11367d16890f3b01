package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/creatorgen/internal/domain"
	"github.com/vanshika/creatorgen/internal/generator"
)

func sampleDocument() domain.Document {
	refundedAt := "2025-03-02T10:00:00Z"
	txs := []domain.Transaction{
		{ID: "tx_1", Timestamp: "2025-03-01T09:00:00Z", Channel: domain.ChannelMessages, CreatorAlias: "@a", FanID: "fan_1", Amount: 100},
		{ID: "tx_2", Timestamp: "2025-03-01T23:59:59.500000Z", Channel: domain.ChannelTips, CreatorAlias: "@b", FanID: "fan_1", Amount: 300},
		{ID: "tx_3", Timestamp: "2025-03-02T00:00:01Z", Channel: domain.ChannelMessages, CreatorAlias: "@a", FanID: "fan_2", Amount: 200},
		{ID: "tx_4", Timestamp: "2025-02-28T12:00:00Z", Channel: domain.ChannelPosts, CreatorAlias: "@c", FanID: "fan_3", Amount: 400},
		{ID: "tx_5", Timestamp: "2025-03-02T10:00:00Z", Channel: domain.ChannelTips, CreatorAlias: "@a", FanID: "fan_4", Amount: 999, IsRefunded: true, RefundTimestamp: &refundedAt},
	}
	return domain.Document{
		Metadata:     generator.BuildMetadata(txs),
		Transactions: txs,
		Creators: []domain.Creator{
			{ID: "a", Name: "A", Alias: "@a"},
			{ID: "b", Name: "B", Alias: "@b"},
		},
		Fans: generator.AggregateFans(txs),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleDocument(), 2)

	assert.Equal(t, 5, s.Transactions)
	assert.Equal(t, 1, s.Refunded)
	assert.InDelta(t, 1000.0, s.TotalRevenue, 1e-9)
	assert.Equal(t, 2, s.Days)
	assert.InDelta(t, 500.0, s.AverageDailyRevenue, 1e-9)
	assert.Equal(t, 0.5, s.PlatformFeeRate)
	assert.InDelta(t, 500.0, s.PlatformFees, 1e-9)
	assert.InDelta(t, 500.0, s.NetRevenue, 1e-9)
	assert.Equal(t, 4, s.Fans)
	assert.Equal(t, 1, s.RepeatFans)

	require.Len(t, s.Channels, 3)
	assert.Equal(t, ChannelStat{Channel: domain.ChannelMessages, Count: 2, Percentage: 50, Revenue: 300}, s.Channels[0])
	assert.Equal(t, ChannelStat{Channel: domain.ChannelTips, Count: 1, Percentage: 25, Revenue: 300}, s.Channels[1])
	assert.Equal(t, ChannelStat{Channel: domain.ChannelPosts, Count: 1, Percentage: 25, Revenue: 400}, s.Channels[2])

	require.Len(t, s.Creators, 3)
	assert.Equal(t, CreatorStat{Alias: "@a", Count: 2, Revenue: 300}, s.Creators[0])
	assert.Equal(t, CreatorStat{Alias: "@b", Count: 1, Revenue: 300}, s.Creators[1])
	assert.Equal(t, CreatorStat{Alias: "@c", Count: 1, Revenue: 400}, s.Creators[2])

	assert.Equal(t, []DayStat{
		{Date: "2025-02-28", Count: 1, Revenue: 400},
		{Date: "2025-03-01", Count: 2, Revenue: 400},
		{Date: "2025-03-02", Count: 1, Revenue: 200},
	}, s.Daily)

	require.NotNil(t, s.Range)
	assert.Equal(t, "2025-02-28T12:00:00Z", s.Range.Start)
	assert.Equal(t, "2025-03-02T00:00:01Z", s.Range.End)
}

func TestSummarize_DefaultsDaysAndFee(t *testing.T) {
	doc := sampleDocument()
	doc.Metadata.PlatformFee = 0

	s := Summarize(doc, 0)
	assert.Equal(t, 3, s.Days)
	assert.Equal(t, DefaultPlatformFeeRate, s.PlatformFeeRate)
	assert.InDelta(t, 800.0, s.NetRevenue, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(domain.Document{}, 30)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AverageDailyRevenue)
	assert.Nil(t, s.Range)
	assert.Empty(t, s.Channels)
}

func TestSummarize_GeneratedDataset(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Seed = 11
	gen, err := generator.New(cfg, generator.WithClock(func() time.Time {
		return time.Date(2025, time.April, 1, 8, 30, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	doc, err := gen.Generate(context.Background())
	require.NoError(t, err)

	s := Summarize(doc, cfg.Days)
	assert.Equal(t, 900, s.Transactions)

	var channelCount int
	var percentage float64
	for _, c := range s.Channels {
		channelCount += c.Count
		percentage += c.Percentage
	}
	assert.Equal(t, 900, channelCount)
	assert.InDelta(t, 100.0, percentage, 1e-6)
	assert.Len(t, s.Creators, 8)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Summarize(sampleDocument(), 2)))

	out := buf.String()
	assert.Contains(t, out, "Generated 5 transactions")
	assert.Contains(t, out, "Total revenue: $1,000.00")
	assert.Contains(t, out, "Average daily revenue: $500.00")
	assert.Contains(t, out, "messages: 2 (50.0%) - $300.00")
	assert.Contains(t, out, "Data range: 2025-02-28T12:00:00Z to 2025-03-02T00:00:01Z")
	assert.Contains(t, out, "Daily revenue:\n  2025-02-28: 1 - $400.00\n  2025-03-01: 2 - $400.00\n  2025-03-02: 1 - $200.00\n")
}

func TestSummarize_SumsMoneyExactly(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "tx_1", Timestamp: "2025-03-01T09:00:00Z", Channel: domain.ChannelMessages, CreatorAlias: "@a", FanID: "fan_1", Amount: 0.1},
		{ID: "tx_2", Timestamp: "2025-03-01T10:00:00Z", Channel: domain.ChannelMessages, CreatorAlias: "@a", FanID: "fan_2", Amount: 0.2},
		{ID: "tx_3", Timestamp: "2025-03-02T10:00:00Z", Channel: domain.ChannelTips, CreatorAlias: "@a", FanID: "fan_3", Amount: 33.03},
	}
	doc := domain.Document{
		Metadata:     generator.BuildMetadata(txs),
		Transactions: txs,
		Fans:         generator.AggregateFans(txs),
	}

	s := Summarize(doc, 3)
	assert.Equal(t, 33.33, s.TotalRevenue)
	assert.Equal(t, 0.3, s.Channels[0].Revenue)
	assert.Equal(t, 0.3, s.Daily[0].Revenue)
	assert.Equal(t, 33.33, s.Creators[0].Revenue)
	assert.Equal(t, 11.11, s.AverageDailyRevenue)
	assert.Equal(t, 16.67, s.PlatformFees)
	assert.Equal(t, 16.66, s.NetRevenue)
}
