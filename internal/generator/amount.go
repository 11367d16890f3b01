package generator

import "github.com/vanshika/creatorgen/internal/domain"

// TipProfile describes the discrete amounts tips tend to cluster on.
type TipProfile struct {
	Chance  float64
	Amounts []float64
}

// SampleAmount draws a raw amount for channel. Tips land on one of the common
// amounts with probability tips.Chance; everything else is uniform over the
// range, rounded to cents.
func SampleAmount(channel domain.Channel, r AmountRange, tips TipProfile, src Source) float64 {
	if channel == domain.ChannelTips && len(tips.Amounts) > 0 {
		if src.Float64() < tips.Chance {
			return tips.Amounts[src.Intn(len(tips.Amounts))]
		}
	}
	return roundCents(uniform(src, r.Min, r.Max))
}
