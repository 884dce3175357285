package sim

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		if v := Random(rng, -2, 2); v < -2 || v >= 2 {
			t.Fatalf("Random(-2,2) = %g", v)
		}
	}
	if v := Random(&scripted{vals: []float64{0}}, 10, 30); v != 10 {
		t.Errorf("Random at 0 = %g, want 10", v)
	}
}

func TestRandomColor(t *testing.T) {
	got := RandomColor(&scripted{vals: []float64{0.1, 0.5, 0.99999}}, 0.8)
	want := color.NRGBA{R: 25, G: 128, B: 255, A: 204}
	if got != want {
		t.Errorf("RandomColor = %v, want %v", got, want)
	}
	if c := RandomColor(&scripted{vals: []float64{0}}, 2); c.A != 255 {
		t.Errorf("alpha above 1 gave %d, want 255", c.A)
	}
}
