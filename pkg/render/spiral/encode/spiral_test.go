package encode

import (
	"math"
	"testing"
)

func TestSpiralPoints(t *testing.T) {
	s := Spiral{Center: Point{50, 50}, MaxRadius: 40, Steps: 100, AngleStep: 0.1}

	var pts []Point
	for p := range s.Points() {
		pts = append(pts, p)
	}
	if len(pts) != 100 {
		t.Fatalf("got %d points, want 100", len(pts))
	}
	if pts[0] != s.Center {
		t.Errorf("first point = %v, want centre %v", pts[0], s.Center)
	}

	prevR := -1.0
	for i, p := range pts {
		r := math.Hypot(p.X-s.Center.X, p.Y-s.Center.Y)
		if r < prevR-1e-9 {
			t.Errorf("point %d radius %v shrank from %v", i, r, prevR)
		}
		if r > s.MaxRadius+1e-9 {
			t.Errorf("point %d radius %v exceeds %v", i, r, s.MaxRadius)
		}
		prevR = r
	}
	if want := 99.0 / 100 * 40; math.Abs(s.Extent()-want) > 1e-9 {
		t.Errorf("Extent() = %v, want %v", s.Extent(), want)
	}
}

func TestSpiralRestartable(t *testing.T) {
	s := Spiral{MaxRadius: 10, Steps: 12.5, AngleStep: 0.1}
	seq := s.Points()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 13 || b != 13 {
		t.Errorf("iterations yielded %d and %d points, want 13 each", a, b)
	}
}

func TestSpiralEarlyStop(t *testing.T) {
	s := Spiral{MaxRadius: 10, Steps: 500, AngleStep: 0.1}
	n := 0
	for range s.Points() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("break after 3 yielded %d", n)
	}
}

func TestSpiralEmpty(t *testing.T) {
	s := Spiral{Steps: 0}
	for range s.Points() {
		t.Fatal("zero-step spiral yielded a point")
	}
	if s.Len() != 0 || s.Extent() != 0 {
		t.Errorf("Len() = %d, Extent() = %v", s.Len(), s.Extent())
	}
}
