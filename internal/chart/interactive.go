package chart

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
	"github.com/san-kum/typhoonviz/internal/palette"
	"github.com/san-kum/typhoonviz/internal/timing"
)

const (
	interactiveFrames      = 100
	interactiveStaticStars = 150
	interactiveTwinkles    = 80
	interactiveSwayY       = 0.4
	interactiveSwayX       = 0.1
	interactiveSwayXRate   = 0.7
	interactiveFadeAlpha   = 0.8
	interactiveMarkerScale = 3
)

var (
	interactiveStagger = timing.Stagger{Delay: 2, Duration: 15}
	interactiveWave    = timing.Wave{FramePeriod: 15, ItemPeriod: 3}
)

// Interactive is the flow chart with detail hover, a year filter, and
// play/pause controls. Its initial view is a static render; the animation
// frames add twinkling stars and pulsing markers.
type Interactive struct {
	base
}

func NewInteractive(ds *dataset.Dataset, opts Options) *Interactive {
	return &Interactive{base: newBase("interactive", "interactive_typhoon_visualization.html", interactiveFrames, English, AssembleStatic, ds, opts)}
}

func (c *Interactive) anchor(i, count int) geom.Point {
	return geom.Point{X: dataset.BaseX(i, c.ds.Len()), Y: dataset.BaseY(count, c.ds.MaxCount())}
}

func (c *Interactive) marker(i int, rec dataset.YearlyRecord, size float64) Trace {
	m := Marker(c.anchor(i, rec.Count), size, palette.Gold.WithAlpha(0.9).String(), fmt.Sprint(rec.Year))
	m.Outline = &Outline{Color: "white", Width: 2}
	m.Symbol = "circle"
	m.TextPosition = TextMiddle
	m.TextColor = "black"
	m.TextSize = 10
	m.Hover = []string{c.labels.DetailText(rec, c.ds.DetailFor(rec.Year))}
	m.Year = rec.Year
	m.Selectable = true
	return m
}

// Initial is the static view shown before the animation plays.
func (c *Interactive) Initial() Frame {
	fr := Frame{Name: "initial"}

	for i, rec := range c.ds.Records() {
		for j, cv := range geom.GenerateFlowCurves(c.rng, c.anchor(i, rec.Count), c.flow) {
			line := Line(cv.Points, cv.Width, palette.White.WithAlpha(cv.Opacity).String())
			line.Spline = true
			line.Name = fmt.Sprintf("flow_%d_%d", rec.Year, j)
			line.Year = rec.Year
			fr.add(line)
		}

		m := c.marker(i, rec, float64(rec.Count*interactiveMarkerScale))
		m.Name = fmt.Sprintf("data_%d", rec.Year)
		fr.add(m)
		fr.Progress = append(fr.Progress, 1)
	}

	stars := Markers(geom.StarField(c.rng, geom.FieldParams{
		Area:    geom.Square(10),
		Count:   interactiveStaticStars,
		SizeMin: 1,
		SizeMax: 3,
		Color:   geom.Fixed(palette.White.WithAlpha(0.4)),
	}))
	stars.Name = "stars"
	stars.Symbol = "star"
	fr.add(stars)

	return fr
}

// Twinkle is the background star alpha for star k at frame f.
func Twinkle(f, k int) float64 {
	return timing.Clamp(0.2+0.3*timing.Oscillation(float64(f), 10, float64(k)), 0, 1)
}

// Pulse is the marker size multiplier for item i at frame f.
func Pulse(f, i int) float64 {
	return 2.5 + 0.5*timing.Oscillation(float64(f), 8, float64(i))
}

func (c *Interactive) Frame(f int) Frame {
	fr := c.newFrame(f)

	stars := Markers(geom.StarField(c.rng, geom.FieldParams{
		Area:    geom.Square(10),
		Count:   interactiveTwinkles,
		SizeMin: 1,
		SizeMax: 4,
		Color: func(_ *rand.Rand, k int) palette.RGBA {
			return palette.White.WithAlpha(Twinkle(f, k))
		},
	}))
	stars.Name = "animated_stars"
	stars.Symbol = "star"
	fr.add(stars)

	for i, rec := range c.ds.Records() {
		progress := interactiveStagger.Progress(f, i)
		fr.Progress = append(fr.Progress, progress)

		curves := geom.GenerateFlowCurves(c.rng, c.anchor(i, rec.Count), c.flow)
		for j, cv := range curves {
			phase := interactiveWave.Phase(f, i) + float64(j)/10
			pts := geom.Sway(cv.Points, interactiveSwayY, phase, interactiveSwayX, interactiveSwayXRate)
			line := Line(pts, cv.Width*progress, palette.White.WithAlpha(cv.Opacity*progress*interactiveFadeAlpha).String())
			line.Spline = true
			line.Name = fmt.Sprintf("animated_flow_%d_%d", rec.Year, j)
			line.Year = rec.Year
			fr.add(line)
		}

		m := c.marker(i, rec, float64(rec.Count)*Pulse(f, i))
		m.Name = fmt.Sprintf("animated_data_%d", rec.Year)
		m.Opacity = progress
		fr.add(m)
	}

	return fr
}

// Filters splits the span into the dropdown ranges.
func (c *Interactive) Filters() []YearFilter {
	first, last := c.ds.Span()
	filters := []YearFilter{{Label: c.labels.AllYears}}
	for from := first; from <= last; {
		to := min(decadeEnd(from), last)
		filters = append(filters, YearFilter{Label: fmt.Sprintf("%d-%d", from, to), From: from, To: to})
		from = to + 1
	}
	return filters
}

// decadeEnd is the last year grouped with y: 2002 -> 2010, 2011 -> 2020.
func decadeEnd(y int) int {
	if y%10 == 0 {
		return y
	}
	return (y/10 + 1) * 10
}

func (c *Interactive) Layout() Layout {
	return Layout{
		Title:       c.title(),
		Subtitle:    c.labels.Subtitle,
		TitleSize:   24,
		TitleColor:  "white",
		Font:        "Arial",
		X:           Axis{Range: [2]float64{-10, 10}},
		Y:           Axis{Range: [2]float64{-10, 10}},
		Background:  "rgb(5,5,20)",
		Margin:      Margin{Left: 40, Right: 40, Top: 100, Bottom: 120},
		ButtonColor: "rgba(255,215,0,0.8)",
		Filters:     c.Filters(),
		Annotation:  c.labels.Annotation,
		Buttons: []Button{
			{Label: c.labels.Play, Action: ActionPlay, FrameMS: 100, TransitionMS: 50, Easing: "cubic-in-out"},
			{Label: c.labels.Pause, Action: ActionPause},
		},
	}
}
