package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws so single sampling paths can be asserted.
type scriptedSource struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	require.NotEmpty(s.t, s.floats, "unexpected Float64 draw")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	require.NotEmpty(s.t, s.ints, "unexpected Intn draw")
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Int63n(n int64) int64 {
	return int64(s.Intn(int(n)))
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC)
}

func hasAtMostTwoDecimals(amount float64) bool {
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

func messagesOnlyConfig() Config {
	cfg := DefaultConfig()
	cfg.ChannelWeights = []ChannelWeight{
		{Channel: "messages", Weight: 1.0},
		{Channel: "tips", Weight: 0},
		{Channel: "subscriptions", Weight: 0},
		{Channel: "posts", Weight: 0},
	}
	return cfg
}
