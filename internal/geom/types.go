package geom

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Rotate turns p counter-clockwise about the origin by angle radians.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

type Points []Point

func (ps Points) IsValid() bool {
	for _, p := range ps {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// Validate wraps ErrInvalidGeometry with the offending index.
func (ps Points) Validate() error {
	for i, p := range ps {
		if !(Points{p}).IsValid() {
			return fmt.Errorf("%w: point %d (%v, %v)", ErrInvalidGeometry, i, p.X, p.Y)
		}
	}
	return nil
}

func (ps Points) XY() (xs, ys []float64) {
	xs = make([]float64, len(ps))
	ys = make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func (ps Points) Rotate(angle float64) Points {
	out := make(Points, len(ps))
	for i, p := range ps {
		out[i] = p.Rotate(angle)
	}
	return out
}

// Bounds returns the min and max corners. Empty input yields zero points.
func (ps Points) Bounds() (min, max Point) {
	if len(ps) == 0 {
		return Point{}, Point{}
	}
	min, max = ps[0], ps[0]
	for _, p := range ps[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Linspace returns n evenly spaced samples from start to end. With endpoint
// false the interval is half-open and end is not produced.
func Linspace(start, end float64, n int, endpoint bool) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}

	div := float64(n)
	if endpoint {
		div = float64(n - 1)
	}
	step := (end - start) / div

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	if endpoint {
		out[n-1] = end
	}
	return out
}

// Rect is an axis-aligned sampling area.
type Rect struct {
	MinX, MaxX, MinY, MaxY float64
}

// Square is the rect [-h, h] x [-h, h].
func Square(h float64) Rect {
	return Rect{-h, h, -h, h}
}

func uniform(rngFloat func() float64, lo, hi float64) float64 {
	return lo + rngFloat()*(hi-lo)
}
