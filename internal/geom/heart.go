package geom

import (
	"math"
	"math/rand"

	"github.com/san-kum/typhoonviz/internal/palette"
)

// heartDenomOffset keeps sin(t)+offset >= 0.4 for every t.
const heartDenomOffset = 1.4

// HeartRadius is r(t) = scale*(2 - 2 sin t + sin t * sqrt(|cos t|)/(sin t + 1.4)).
func HeartRadius(t, scale float64) float64 {
	s := math.Sin(t)
	return scale * (2 - 2*s + s*math.Sqrt(math.Abs(math.Cos(t)))/(s+heartDenomOffset))
}

// HeartOutline samples n points of the curve over [0, 2π), endpoint excluded,
// as (r sin θ, r cos θ).
func HeartOutline(scale float64, n int) Points {
	theta := Linspace(0, 2*math.Pi, n, false)
	pts := make(Points, n)
	for i, th := range theta {
		r := HeartRadius(th, scale)
		pts[i] = Point{X: r * math.Sin(th), Y: r * math.Cos(th)}
	}
	return pts
}

// Star is a single drawable point with its own size and color.
type Star struct {
	Point
	Size  float64
	Color palette.RGBA
}

type Stars []Star

func (s Stars) Points() Points {
	pts := make(Points, len(s))
	for i, st := range s {
		pts[i] = st.Point
	}
	return pts
}

func (s Stars) Sizes() []float64 {
	out := make([]float64, len(s))
	for i, st := range s {
		out[i] = st.Size
	}
	return out
}

func (s Stars) Colors() []string {
	out := make([]string, len(s))
	for i, st := range s {
		out[i] = st.Color.String()
	}
	return out
}

// HeartStars scatters n stars inside the unit heart at radius fraction U[0.3, 1).
func HeartStars(rng *rand.Rand, n int) Stars {
	stars := make(Stars, n)
	for i := range stars {
		t := uniform(rng.Float64, 0, 2*math.Pi)
		frac := uniform(rng.Float64, 0.3, 1.0)
		r := frac * HeartRadius(t, 1.0)
		stars[i] = Star{
			Point: Point{X: r * math.Sin(t), Y: r * math.Cos(t)},
			Size:  uniform(rng.Float64, 3, 10),
			Color: palette.Random(rng, palette.Range{180, 255}, palette.Range{120, 180}, palette.Range{200, 255}, palette.AlphaRange{0.5, 1.0}),
		}
	}
	return stars
}
