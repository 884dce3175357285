package sim

// Point is a past ball position
type Point struct {
	X, Y float64
}

// Trail is a bounded ring buffer of past positions, oldest evicted first
type Trail struct {
	points []Point
	start  int // index of the oldest point
	n      int
}

// NewTrail creates an empty trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Point, capacity)}
}

// Push appends p, dropping the oldest point once the trail is full
func (t *Trail) Push(p Point) {
	if t.n < len(t.points) {
		t.points[(t.start+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Len returns the number of stored points
func (t *Trail) Len() int { return t.n }

// Cap returns the maximum number of stored points
func (t *Trail) Cap() int { return len(t.points) }

// At returns the i-th point, 0 being the oldest
func (t *Trail) At(i int) Point {
	return t.points[(t.start+i)%len(t.points)]
}

// Points returns a copy of the trail from oldest to newest
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
