package encode

import (
	"iter"
	"math"
)

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Spiral describes an Archimedean spiral: step t sits at angle t·AngleStep
// and radius t/Steps·MaxRadius around Center.
type Spiral struct {
	Center    Point
	MaxRadius float64
	Steps     float64 // fractional step count from the length mapping
	AngleStep float64
}

// Len returns the number of points the spiral yields.
func (s Spiral) Len() int {
	if s.Steps <= 0 {
		return 0
	}
	return int(math.Ceil(s.Steps))
}

// At returns point t of the spiral.
func (s Spiral) At(t int) Point {
	angle := float64(t) * s.AngleStep
	r := float64(t) / s.Steps * s.MaxRadius
	return Point{
		X: s.Center.X + r*math.Cos(angle),
		Y: s.Center.Y + r*math.Sin(angle),
	}
}

// Points yields the spiral's points from the centre outwards. The sequence
// is finite and can be ranged over any number of times.
func (s Spiral) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := s.Len()
		for t := range n {
			if !yield(s.At(t)) {
				return
			}
		}
	}
}

// Extent returns the radius of the last point.
func (s Spiral) Extent() float64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	return float64(n-1) / s.Steps * s.MaxRadius
}
