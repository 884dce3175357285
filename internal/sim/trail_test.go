package sim

import "testing"

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(Point{float64(i), float64(-i)})
	}
	if tr.Len() != 3 || tr.Cap() != 3 {
		t.Fatalf("len/cap = %d/%d, want 3/3", tr.Len(), tr.Cap())
	}
	got := tr.Points()
	for i, want := range []float64{3, 4, 5} {
		if got[i].X != want || got[i].Y != -want {
			t.Errorf("point %d = %v, want {%g %g}", i, got[i], want, -want)
		}
	}
}

func TestTrailPartial(t *testing.T) {
	tr := NewTrail(TrailLength)
	tr.Push(Point{1, 1})
	tr.Push(Point{2, 2})
	if tr.Len() != 2 {
		t.Fatalf("len = %d, want 2", tr.Len())
	}
	if tr.At(0) != (Point{1, 1}) || tr.At(1) != (Point{2, 2}) {
		t.Errorf("points = %v", tr.Points())
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(Point{1, 1})
	tr.Push(Point{2, 2})
	if tr.Len() != 1 || tr.At(0) != (Point{2, 2}) {
		t.Errorf("points = %v, want only the newest", tr.Points())
	}
}
