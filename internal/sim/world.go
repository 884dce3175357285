package sim

import "image/color"

// Canvas is the drawing surface a World renders onto
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// World is the simulation context: bounds, physics parameters, balls and pointer state
type World struct {
	Width, Height float64
	Gravity       float64
	Friction      float64
	Balls         []*Ball // Draw order
	Pointer       Pointer
	Ticks         uint64

	cfg Config
}

// NewWorld creates a world of the given size and populates it from rng
func NewWorld(cfg Config, width, height float64, rng RandomSource) *World {
	w := &World{
		Width:    width,
		Height:   height,
		Gravity:  cfg.Gravity,
		Friction: cfg.Friction,
		cfg:      cfg,
	}
	w.Balls = Populate(cfg, width, height, rng)
	return w
}

// Populate creates cfg.MaxBalls balls that each fit inside width x height.
// Overlaps are allowed.
func Populate(cfg Config, width, height float64, rng RandomSource) []*Ball {
	balls := make([]*Ball, 0, cfg.MaxBalls)
	for i := 0; i < cfg.MaxBalls; i++ {
		radius := Random(rng, cfg.MinRadius, cfg.MaxRadius)
		x := Random(rng, radius, width-radius)
		y := Random(rng, radius, height-radius)
		dx := Random(rng, -cfg.MaxSpeed, cfg.MaxSpeed)
		dy := Random(rng, -cfg.MaxSpeed, cfg.MaxSpeed)
		c := RandomColor(rng, cfg.Alpha)
		balls = append(balls, NewBall(x, y, dx, dy, radius, c, cfg.TrailLength))
	}
	return balls
}

// Config returns the settings the world was built with
func (w *World) Config() Config { return w.cfg }

// Resize changes the bounds used by the next bounce checks. Balls left outside
// the new bounds are not moved; they bounce back on their own.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}

// Step advances every ball once in draw order, then resolves collisions
func (w *World) Step() {
	for _, b := range w.Balls {
		b.Update(w.Width, w.Height, w.Gravity, w.Friction)
	}
	w.DetectCollisions()
	w.Ticks++
}

// DetectCollisions negates both velocity components of every overlapping pair.
// Pairs are visited i<j in list order, so a ball in several overlaps flips once per pair.
func (w *World) DetectCollisions() int {
	hits := 0
	for i := 0; i < len(w.Balls); i++ {
		for j := i + 1; j < len(w.Balls); j++ {
			a, b := w.Balls[i], w.Balls[j]
			if a.Overlaps(b) {
				a.DX, a.DY = -a.DX, -a.DY
				b.DX, b.DY = -b.DX, -b.DY
				hits++
			}
		}
	}
	return hits
}

// Render clears the canvas and draws every ball with its trail
func (w *World) Render(c Canvas) {
	c.Clear()
	for _, b := range w.Balls {
		b.Draw(c)
	}
}
