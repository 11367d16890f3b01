package generator

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Source is the randomness the generator draws from. *rand.Rand satisfies it,
// so seeded runs are reproducible.
type Source interface {
	Float64() float64
	Intn(n int) int
	Int63n(n int64) int64
}

func newSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// roundCents rounds half away from zero on the shortest decimal form of
// amount, so 2.675 becomes 2.68 rather than the binary-float 2.67.
func roundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
