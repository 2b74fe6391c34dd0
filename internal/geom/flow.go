package geom

import (
	"math"
	"math/rand"
)

const (
	DefaultFlowCurves = 15
	DefaultFlowPoints = 100

	flowNoiseSigma = 0.5
	flowNoiseX     = 0.3
)

// FlowCurve is one smoke line anchored at a year's base position.
type FlowCurve struct {
	Points   Points
	Width    float64
	Opacity  float64
	Instance int
}

type FlowParams struct {
	NumCurves   int
	CurvePoints int
}

func DefaultFlowParams() FlowParams {
	return FlowParams{NumCurves: DefaultFlowCurves, CurvePoints: DefaultFlowPoints}
}

// GenerateFlowCurves draws p.NumCurves lines of p.CurvePoints samples each.
// For t over [0, 2π]: y = base.Y + t/2 + noise, x = base.X + a*sin(t+φ) + 0.3*noise,
// with φ ~ U[0, 2π), a ~ U[0.3, 1), noise ~ N(0, 0.5) per point.
func GenerateFlowCurves(rng *rand.Rand, base Point, p FlowParams) []FlowCurve {
	curves := make([]FlowCurve, 0, p.NumCurves)
	t := Linspace(0, 2*math.Pi, p.CurvePoints, true)

	for c := 0; c < p.NumCurves; c++ {
		noise := make([]float64, p.CurvePoints)
		for i := range noise {
			noise[i] = rng.NormFloat64() * flowNoiseSigma
		}
		phase := uniform(rng.Float64, 0, 2*math.Pi)
		amplitude := uniform(rng.Float64, 0.3, 1.0)

		pts := make(Points, p.CurvePoints)
		for i, ti := range t {
			pts[i] = Point{
				X: base.X + amplitude*math.Sin(ti+phase) + noise[i]*flowNoiseX,
				Y: base.Y + ti/2 + noise[i],
			}
		}

		curves = append(curves, FlowCurve{
			Points:   pts,
			Opacity:  uniform(rng.Float64, 0.3, 0.7),
			Width:    uniform(rng.Float64, 1, 3),
			Instance: c,
		})
	}

	return curves
}

// Sway displaces each point vertically by amp*sin(x + phase), and
// horizontally by xAmp*sin(y + phase*xRate) when xAmp is non-zero.
func Sway(pts Points, amp, phase, xAmp, xRate float64) Points {
	out := make(Points, len(pts))
	for i, p := range pts {
		q := Point{X: p.X, Y: p.Y + amp*math.Sin(p.X+phase)}
		if xAmp != 0 {
			q.X = p.X + xAmp*math.Sin(p.Y+phase*xRate)
		}
		out[i] = q
	}
	return out
}
