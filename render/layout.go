package render

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// ClockPositions places residues 0..n-1 clockwise on the unit circle with 0
// at twelve o'clock.
func ClockPositions(n int) []Point {
	if n < 1 {
		return nil
	}
	out := make([]Point, n)
	for k := range out {
		theta := math.Pi/2 - 2*math.Pi*float64(k)/float64(n)
		out[k] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return out
}
