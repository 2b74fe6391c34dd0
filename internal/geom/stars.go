package geom

import (
	"math"
	"math/rand"

	"github.com/san-kum/typhoonviz/internal/palette"
)

// ColorFunc picks the color for the i-th generated star.
type ColorFunc func(rng *rand.Rand, i int) palette.RGBA

// Fixed returns a ColorFunc that always yields c.
func Fixed(c palette.RGBA) ColorFunc {
	return func(*rand.Rand, int) palette.RGBA { return c }
}

// FieldParams describes a uniform background star field.
type FieldParams struct {
	Area    Rect
	Count   int
	SizeMin float64
	SizeMax float64
	Color   ColorFunc
}

// StarField draws positions, then sizes, then colors, each uniformly.
func StarField(rng *rand.Rand, p FieldParams) Stars {
	stars := make(Stars, p.Count)
	for i := range stars {
		stars[i].X = uniform(rng.Float64, p.Area.MinX, p.Area.MaxX)
	}
	for i := range stars {
		stars[i].Y = uniform(rng.Float64, p.Area.MinY, p.Area.MaxY)
	}
	for i := range stars {
		stars[i].Size = uniform(rng.Float64, p.SizeMin, p.SizeMax)
	}
	color := p.Color
	if color == nil {
		color = Fixed(palette.White)
	}
	for i := range stars {
		stars[i].Color = color(rng, i)
	}
	return stars
}

// Cluster returns numPoints Gaussian core stars around center (sigma radius/2)
// followed by numPoints/2 dimmer dust stars on the annulus [radius/2, 1.5*radius).
func Cluster(rng *rand.Rand, center Point, numPoints int, radius float64) Stars {
	stars := make(Stars, 0, numPoints+numPoints/2)

	for i := 0; i < numPoints; i++ {
		dx := rng.NormFloat64() * radius / 2
		dy := rng.NormFloat64() * radius / 2
		stars = append(stars, Star{
			Point: Point{center.X + dx, center.Y + dy},
			Size:  uniform(rng.Float64, 3, 8),
			Color: palette.White.WithAlpha(uniform(rng.Float64, 0.7, 1.0)),
		})
	}

	for i := 0; i < numPoints/2; i++ {
		angle := uniform(rng.Float64, 0, 2*math.Pi)
		r := uniform(rng.Float64, radius/2, radius*1.5)
		stars = append(stars, Star{
			Point: Point{center.X + r*math.Cos(angle), center.Y + r*math.Sin(angle)},
			Size:  uniform(rng.Float64, 1, 3),
			Color: palette.Gold.WithAlpha(uniform(rng.Float64, 0.3, 0.6)),
		})
	}

	return stars
}
