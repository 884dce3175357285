package sim

import (
	"image/color"
	"math"
)

// Ball is a moving circle with a position history
type Ball struct {
	X, Y   float64 // Centre
	DX, DY float64 // Velocity per tick
	Radius float64
	Color  color.NRGBA
	Trail  *Trail
}

// NewBall creates a ball with an empty trail of the given capacity
func NewBall(x, y, dx, dy, radius float64, c color.NRGBA, trailLength int) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		DX:     dx,
		DY:     dy,
		Radius: radius,
		Color:  c,
		Trail:  NewTrail(trailLength),
	}
}

// Update advances the ball by one tick inside a width x height box.
//
// Walls flip the velocity but never reposition the ball, so it may overlap a
// wall for a tick. Gravity is only added while the ball is clear of the top and
// bottom edges; touching either one reflects dy and damps it by friction instead.
func (b *Ball) Update(width, height, gravity, friction float64) {
	if b.X+b.Radius > width || b.X-b.Radius < 0 {
		b.DX = -b.DX
	}
	if b.Y+b.Radius > height || b.Y-b.Radius < 0 {
		b.DY = -b.DY * friction
	} else {
		b.DY += gravity
	}

	b.X += b.DX
	b.Y += b.DY

	b.Trail.Push(Point{b.X, b.Y})
}

// Contains reports whether (x, y) lies strictly inside the ball
func (b *Ball) Contains(x, y float64) bool {
	return math.Hypot(x-b.X, y-b.Y) < b.Radius
}

// Overlaps reports whether two balls' circles intersect
func (b *Ball) Overlaps(o *Ball) bool {
	return math.Hypot(b.X-o.X, b.Y-o.Y) < b.Radius+o.Radius
}

// Draw paints the trail from oldest to newest, each point shrunk by its age,
// then the ball itself on top
func (b *Ball) Draw(c Canvas) {
	n := b.Trail.Len()
	for i := 0; i < n; i++ {
		p := b.Trail.At(i)
		c.FillCircle(p.X, p.Y, b.Radius*float64(i)/float64(n), b.Color)
	}
	c.FillCircle(b.X, b.Y, b.Radius, b.Color)
}
