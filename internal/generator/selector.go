package generator

import "github.com/vanshika/creatorgen/internal/domain"

// SelectChannel draws once from src and returns the channel whose cumulative
// weight range contains the draw, walking weights in order. If rounding leaves
// the draw unmatched the fallback channel is returned.
func SelectChannel(weights []ChannelWeight, fallback domain.Channel, src Source) domain.Channel {
	draw := src.Float64()
	var cumulative float64
	for _, cw := range weights {
		cumulative += cw.Weight
		if draw < cumulative {
			return cw.Channel
		}
	}
	return fallback
}
