package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vanshika/creatorgen/internal/domain"
)

func TestSelectChannel(t *testing.T) {
	weights := DefaultConfig().ChannelWeights

	tests := []struct {
		name string
		draw float64
		want domain.Channel
	}{
		{name: "lowest draw", draw: 0, want: domain.ChannelMessages},
		{name: "inside messages", draw: 0.59, want: domain.ChannelMessages},
		{name: "messages boundary belongs to tips", draw: 0.6, want: domain.ChannelTips},
		{name: "inside tips", draw: 0.81, want: domain.ChannelTips},
		{name: "inside subscriptions", draw: 0.83, want: domain.ChannelSubscriptions},
		{name: "inside posts", draw: 0.995, want: domain.ChannelPosts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{t: t, floats: []float64{tt.draw}}
			assert.Equal(t, tt.want, SelectChannel(weights, domain.ChannelMessages, src))
			assert.Empty(t, src.floats)
		})
	}
}

func TestSelectChannel_FallbackWhenUnmatched(t *testing.T) {
	weights := []ChannelWeight{
		{Channel: domain.ChannelTips, Weight: 0.3},
		{Channel: domain.ChannelPosts, Weight: 0.2},
	}
	src := &scriptedSource{t: t, floats: []float64{0.7}}

	assert.Equal(t, domain.ChannelMessages, SelectChannel(weights, domain.ChannelMessages, src))
}

func TestSelectChannel_ZeroWeightNeverChosen(t *testing.T) {
	weights := messagesOnlyConfig().ChannelWeights
	for _, draw := range []float64{0, 0.25, 0.5, 0.999999} {
		src := &scriptedSource{t: t, floats: []float64{draw}}
		assert.Equal(t, domain.ChannelMessages, SelectChannel(weights, domain.ChannelPosts, src), "draw %v", draw)
	}
}
