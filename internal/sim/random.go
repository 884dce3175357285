package sim

import (
	"image/color"
	"math"
)

// RandomSource yields uniform values in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Random returns a uniform value in [min, max)
func Random(rng RandomSource, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// RandomColor draws three independent channels in [0,256) and applies the given alpha
func RandomColor(rng RandomSource, alpha float64) color.NRGBA {
	r := uint8(math.Floor(Random(rng, 0, 256)))
	g := uint8(math.Floor(Random(rng, 0, 256)))
	b := uint8(math.Floor(Random(rng, 0, 256)))
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	a = math.Max(0, math.Min(1, a))
	return uint8(math.Round(a * 255))
}
