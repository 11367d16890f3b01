package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vanshika/creatorgen/internal/domain"
	"github.com/vanshika/creatorgen/internal/generator"
)

// DefaultPlatformFeeRate applies when a document carries no platform fee.
const DefaultPlatformFeeRate = 0.2

// ChannelStat aggregates transactions of one channel.
type ChannelStat struct {
	Channel    domain.Channel `json:"channel"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
	Revenue    float64        `json:"revenue"`
}

// CreatorStat aggregates transactions attributed to one creator alias.
type CreatorStat struct {
	Alias   string  `json:"alias"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DayStat aggregates transactions sharing a calendar date.
type DayStat struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DataRange is the earliest and latest transaction timestamp.
type DataRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Summary describes the earnings contained in a document.
type Summary struct {
	Transactions        int           `json:"transactions"`
	TotalRevenue        float64       `json:"totalRevenue"`
	Days                int           `json:"days"`
	AverageDailyRevenue float64       `json:"averageDailyRevenue"`
	PlatformFeeRate     float64       `json:"platformFeeRate"`
	PlatformFees        float64       `json:"platformFees"`
	NetRevenue          float64       `json:"netRevenue"`
	Refunded            int           `json:"refunded"`
	Fans                int           `json:"fans"`
	RepeatFans          int           `json:"repeatFans"`
	Channels            []ChannelStat `json:"channels"`
	Creators            []CreatorStat `json:"creators"`
	Daily               []DayStat     `json:"daily"`
	Range               *DataRange    `json:"range,omitempty"`
}

// Summarize computes earnings statistics for doc. Refunded transactions are
// counted but excluded from revenue. days is the window length used for the
// daily average; values below one fall back to the number of distinct dates.
// Money is summed as decimals and the fee, net and average figures are rounded
// to cents.
func Summarize(doc domain.Document, days int) Summary {
	feeRate := doc.Metadata.PlatformFee
	if feeRate == 0 {
		feeRate = DefaultPlatformFeeRate
	}

	s := Summary{
		Transactions:    len(doc.Transactions),
		PlatformFeeRate: feeRate,
		Fans:            len(doc.Fans),
		Channels:        []ChannelStat{},
		Creators:        []CreatorStat{},
		Daily:           []DayStat{},
	}

	channelIdx := map[domain.Channel]int{}
	creatorIdx := map[string]int{}
	for _, c := range doc.Creators {
		creatorIdx[c.Alias] = len(s.Creators)
		s.Creators = append(s.Creators, CreatorStat{Alias: c.Alias})
	}
	dayIdx := map[string]int{}

	var total decimal.Decimal
	channelRevenue := make([]decimal.Decimal, 0, 4)
	creatorRevenue := make([]decimal.Decimal, len(s.Creators))
	var dayRevenue []decimal.Decimal

	var first, last time.Time
	var firstRaw, lastRaw string

	for _, tx := range doc.Transactions {
		if tx.IsRefunded {
			s.Refunded++
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		total = total.Add(amount)

		ci, ok := channelIdx[tx.Channel]
		if !ok {
			ci = len(s.Channels)
			channelIdx[tx.Channel] = ci
			s.Channels = append(s.Channels, ChannelStat{Channel: tx.Channel})
			channelRevenue = append(channelRevenue, decimal.Zero)
		}
		s.Channels[ci].Count++
		channelRevenue[ci] = channelRevenue[ci].Add(amount)

		cri, ok := creatorIdx[tx.CreatorAlias]
		if !ok {
			cri = len(s.Creators)
			creatorIdx[tx.CreatorAlias] = cri
			s.Creators = append(s.Creators, CreatorStat{Alias: tx.CreatorAlias})
			creatorRevenue = append(creatorRevenue, decimal.Zero)
		}
		s.Creators[cri].Count++
		creatorRevenue[cri] = creatorRevenue[cri].Add(amount)

		ts, err := generator.ParseTimestamp(tx.Timestamp, time.UTC)
		if err != nil {
			continue
		}
		date := ts.Format("2006-01-02")
		di, ok := dayIdx[date]
		if !ok {
			di = len(s.Daily)
			dayIdx[date] = di
			s.Daily = append(s.Daily, DayStat{Date: date})
			dayRevenue = append(dayRevenue, decimal.Zero)
		}
		s.Daily[di].Count++
		dayRevenue[di] = dayRevenue[di].Add(amount)

		if firstRaw == "" || ts.Before(first) {
			first, firstRaw = ts, tx.Timestamp
		}
		if lastRaw == "" || ts.After(last) {
			last, lastRaw = ts, tx.Timestamp
		}
	}

	for i := range s.Daily {
		s.Daily[i].Revenue = dayRevenue[i].InexactFloat64()
	}
	sort.Slice(s.Daily, func(i, j int) bool { return s.Daily[i].Date < s.Daily[j].Date })
	for i := range s.Creators {
		s.Creators[i].Revenue = creatorRevenue[i].InexactFloat64()
	}

	counted := s.Transactions - s.Refunded
	for i := range s.Channels {
		s.Channels[i].Revenue = channelRevenue[i].InexactFloat64()
		if counted > 0 {
			s.Channels[i].Percentage = float64(s.Channels[i].Count) / float64(counted) * 100
		}
	}

	s.Days = days
	if s.Days < 1 {
		s.Days = len(s.Daily)
	}
	s.TotalRevenue = total.InexactFloat64()
	if s.Days > 0 {
		s.AverageDailyRevenue = total.Div(decimal.NewFromInt(int64(s.Days))).Round(2).InexactFloat64()
	}

	fees := total.Mul(decimal.NewFromFloat(feeRate)).Round(2)
	s.PlatformFees = fees.InexactFloat64()
	s.NetRevenue = total.Sub(fees).InexactFloat64()

	for _, fan := range doc.Fans {
		if fan.TransactionCount > 1 {
			s.RepeatFans++
		}
	}

	if firstRaw != "" {
		s.Range = &DataRange{Start: firstRaw, End: lastRaw}
	}
	return s
}

// Write renders s as a human readable report.
func Write(w io.Writer, s Summary) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	p.Fprintf(&b, "Generated %d transactions\n", s.Transactions)
	p.Fprintf(&b, "Total revenue: $%.2f\n", s.TotalRevenue)
	p.Fprintf(&b, "Average daily revenue: $%.2f\n", s.AverageDailyRevenue)
	p.Fprintf(&b, "Net revenue: $%.2f (platform fee %.0f%%: $%.2f)\n", s.NetRevenue, s.PlatformFeeRate*100, s.PlatformFees)
	p.Fprintf(&b, "Fans: %d (%d repeat)\n", s.Fans, s.RepeatFans)
	if s.Range != nil {
		fmt.Fprintf(&b, "Data range: %s to %s\n", s.Range.Start, s.Range.End)
	}

	b.WriteString("\nChannel distribution:\n")
	for _, c := range s.Channels {
		p.Fprintf(&b, "  %s: %d (%.1f%%) - $%.2f\n", c.Channel, c.Count, c.Percentage, c.Revenue)
	}

	b.WriteString("\nCreators:\n")
	for _, c := range s.Creators {
		p.Fprintf(&b, "  %s: %d - $%.2f\n", c.Alias, c.Count, c.Revenue)
	}

	b.WriteString("\nDaily revenue:\n")
	for _, d := range s.Daily {
		p.Fprintf(&b, "  %s: %d - $%.2f\n", d.Date, d.Count, d.Revenue)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
