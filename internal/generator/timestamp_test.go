package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "whole seconds", in: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), want: "2025-01-02T03:04:05Z"},
		{name: "microseconds kept", in: time.Date(2025, 1, 2, 3, 4, 5, 123456789, time.UTC), want: "2025-01-02T03:04:05.123456Z"},
		{name: "sub-microsecond dropped", in: time.Date(2025, 1, 2, 3, 4, 5, 999, time.UTC), want: "2025-01-02T03:04:05Z"},
		{name: "local wall clock not converted", in: time.Date(2025, 1, 2, 3, 4, 5, 0, pst), want: "2025-01-02T03:04:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	in := time.Date(2025, 6, 7, 8, 9, 10, 654321000, time.UTC)

	got, err := ParseTimestamp(FormatTimestamp(in), time.UTC)
	require.NoError(t, err)
	assert.True(t, in.Equal(got), "want %v got %v", in, got)

	_, err = ParseTimestamp("not-a-time", time.UTC)
	assert.Error(t, err)
}
