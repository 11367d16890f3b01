package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/vanshika/creatorgen/internal/domain"
	"github.com/vanshika/creatorgen/internal/metrics"
)

const day = 24 * time.Hour

// Generator produces synthetic creator earnings data. The id counters live on
// the instance and keep counting across Generate calls. A Generator must not
// be shared between goroutines.
type Generator struct {
	cfg     Config
	rand    Source
	now     func() time.Time
	metrics *metrics.Metrics
	logger  *slog.Logger

	fanCounter int
	txCounter  int
}

// Option customises a Generator.
type Option func(*Generator)

// WithSource replaces the seeded random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rand = src
		}
	}
}

// WithClock sets the function used to anchor the generation window.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMetrics records generation metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}

// WithLogger sets the logger used for per-day debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New validates cfg and returns a Generator. A zero Seed seeds from the clock.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg:        cloneConfig(cfg),
		rand:       newSeededSource(seed),
		now:        time.Now,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		fanCounter: 1,
		txCounter:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	return cloneConfig(g.cfg)
}

// Generate builds a full dataset for the configured number of days ending now.
// Days are emitted in order; within a day transactions keep generation order.
// It respects context cancellation between days.
func (g *Generator) Generate(ctx context.Context) (domain.Document, error) {
	started := time.Now()
	end := g.now()
	windowStart := end.Add(-time.Duration(g.cfg.Days) * day)

	transactions := make([]domain.Transaction, 0, g.cfg.Days*g.cfg.TransactionsPerDay)
	for d := 0; d < g.cfg.Days; d++ {
		if err := ctx.Err(); err != nil {
			g.metrics.RecordGeneration("canceled", time.Since(started).Seconds())
			return domain.Document{}, err
		}

		dayStart := windowStart.Add(time.Duration(d) * day)
		target := uniform(g.rand, g.cfg.DailyRevenue.Min, g.cfg.DailyRevenue.Max)
		daily := g.GenerateDay(dayStart, target)
		transactions = append(transactions, daily...)

		g.logger.Debug("generated day",
			"day", dayStart.Format("2006-01-02"),
			"target", target,
			"revenue", sumAmounts(daily),
		)
	}

	doc := domain.Document{
		Metadata:     BuildMetadata(transactions),
		Transactions: transactions,
		Creators:     slices.Clone(g.cfg.Creators),
		Fans:         AggregateFans(transactions),
	}

	g.metrics.RecordGeneration("ok", time.Since(started).Seconds())
	g.logger.Info("dataset generated",
		"days", g.cfg.Days,
		"transactions", len(doc.Transactions),
		"fans", len(doc.Fans),
		"revenue", sumAmounts(doc.Transactions),
	)
	return doc, nil
}

// GenerateDay produces exactly TransactionsPerDay transactions timestamped
// inside [dayStart, dayStart+24h) whose amounts track target.
//
// Each amount is compared with the even split of what is left of the target
// over the remaining slots; amounts above RescaleThreshold times that split are
// replaced by the split with some jitter. Every amount is floored at
// MinimumAmount. The last slot is never rescaled and there is no true-up, so
// the day total only approximates target.
func (g *Generator) GenerateDay(dayStart time.Time, target float64) []domain.Transaction {
	perDay := g.cfg.TransactionsPerDay
	transactions := make([]domain.Transaction, 0, perDay)
	var running float64

	for i := 0; i < perDay; i++ {
		timestamp := dayStart.Add(time.Duration(g.rand.Int63n(int64(day/time.Second))) * time.Second)
		tx := g.newTransaction(timestamp)

		remainingSlots := perDay - i - 1
		remainingTarget := target - running
		if remainingSlots > 0 {
			ideal := remainingTarget / float64(remainingSlots)
			if tx.Amount > ideal*g.cfg.RescaleThreshold {
				tx.Amount = roundCents(ideal * uniform(g.rand, g.cfg.RescaleJitterMin, g.cfg.RescaleJitterMax))
				g.metrics.RecordRescale()
			}
		}
		if tx.Amount < g.cfg.MinimumAmount {
			tx.Amount = g.cfg.MinimumAmount
			g.metrics.RecordFloor()
		}

		transactions = append(transactions, tx)
		running += tx.Amount
		g.metrics.RecordTransaction(string(tx.Channel))
	}

	g.metrics.RecordDay(running, target)
	return transactions
}

func (g *Generator) newTransaction(timestamp time.Time) domain.Transaction {
	channel := SelectChannel(g.cfg.ChannelWeights, g.cfg.FallbackChannel, g.rand)
	creator := g.cfg.Creators[g.rand.Intn(len(g.cfg.Creators))]
	amount := SampleAmount(channel, g.cfg.AmountRanges[channel], TipProfile{
		Chance:  g.cfg.CommonTipChance,
		Amounts: g.cfg.CommonTipAmounts,
	}, g.rand)

	return domain.Transaction{
		ID:           g.nextTransactionID(),
		Timestamp:    FormatTimestamp(timestamp),
		Channel:      channel,
		CreatorAlias: creator.Alias,
		FanID:        g.nextFanID(),
		Amount:       amount,
	}
}

func (g *Generator) nextTransactionID() string {
	id := fmt.Sprintf("tx_%06d", g.txCounter)
	g.txCounter++
	return id
}

func (g *Generator) nextFanID() string {
	if g.cfg.FanPoolSize > 0 {
		return fmt.Sprintf("fan_%06d", 1+g.rand.Intn(g.cfg.FanPoolSize))
	}
	id := fmt.Sprintf("fan_%06d", g.fanCounter)
	g.fanCounter++
	return id
}

func sumAmounts(transactions []domain.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		total += tx.Amount
	}
	return total
}

func cloneConfig(cfg Config) Config {
	cfg.ChannelWeights = slices.Clone(cfg.ChannelWeights)
	cfg.AmountRanges = maps.Clone(cfg.AmountRanges)
	cfg.Creators = slices.Clone(cfg.Creators)
	cfg.CommonTipAmounts = slices.Clone(cfg.CommonTipAmounts)
	return cfg
}
