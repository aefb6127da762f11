package item

import "math/rand/v2"

// RandomSource yields floats in [0.0, 1.0).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandomSource draws from the math/rand/v2 global generator.
// It is not suitable for anything security sensitive.
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

// uniform returns a value in [lo, hi).
func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// openUniform returns a value in (lo, hi). Draws landing on either bound
// are taken again.
func openUniform(src RandomSource, lo, hi float64) float64 {
	for {
		if v := uniform(src, lo, hi); v > lo && v < hi {
			return v
		}
	}
}

// generatedAttributes holds the values fixed at creation.
type generatedAttributes struct {
	weight      float64
	durability  float64
	rarityValue float64
}

func drawAttributes(src RandomSource) generatedAttributes {
	return generatedAttributes{
		weight:      openUniform(src, MinWeight, MaxWeight),
		durability:  openUniform(src, MinDurability, MaxDurability),
		rarityValue: uniform(src, MinRarityValue, MaxRarityValue),
	}
}
