package chart

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
	"github.com/san-kum/typhoonviz/internal/palette"
	"github.com/san-kum/typhoonviz/internal/timing"
)

const (
	starFrames        = 120
	starBgStars       = 200
	starPointsPer     = 10
	starBaseRadius    = 0.3
	starRadiusPer     = 0.05
	starAmplitude     = 3
	starSpreadX       = 5
	starAxisHalfRange = 6
)

var (
	starStagger = timing.Stagger{Delay: 5, Duration: 30}
	starWave    = timing.Wave{FramePeriod: 20, ItemPeriod: 2}
)

// Star draws one drifting star cluster per year. Clusters grow out of the
// origin as they appear and bob along a sine wave scaled by count.
type Star struct {
	base
	xs []float64
}

func NewStar(ds *dataset.Dataset, opts Options) *Star {
	return &Star{
		base: newBase("star", "typhoon_star_animation.html", starFrames, Chinese, AssembleDropFirst, ds, opts),
		xs:   geom.Linspace(-starSpreadX, starSpreadX, ds.Len(), true),
	}
}

// Center is the cluster center for item i at frame f before progress scaling.
func (c *Star) Center(f, i int) geom.Point {
	amp := dataset.SafeRatio(float64(c.ds.Record(i).Count), float64(c.ds.MaxCount())) * starAmplitude
	return geom.Point{X: c.xs[i], Y: amp * math.Sin(starWave.Phase(f, i))}
}

func (c *Star) Frame(f int) Frame {
	fr := c.newFrame(f)

	bg := geom.StarField(c.rng, geom.FieldParams{
		Area:    geom.Square(starAxisHalfRange),
		Count:   starBgStars,
		SizeMin: 1,
		SizeMax: 3,
		Color: func(rng *rand.Rand, _ int) palette.RGBA {
			return palette.White.WithAlpha(0.3 + rng.Float64()*0.3)
		},
	})
	fr.add(Markers(bg))

	for i, rec := range c.ds.Records() {
		progress := starStagger.Progress(f, i)
		fr.Progress = append(fr.Progress, progress)
		if progress <= 0 {
			continue
		}

		center := c.Center(f, i).Scale(progress)
		radius := starBaseRadius + float64(rec.Count)*starRadiusPer
		stars := geom.Cluster(c.rng, center, rec.Count*starPointsPer, radius)

		t := Markers(stars)
		t.Mode = ModeMarkersText
		t.Opacity = progress
		t.Year = rec.Year
		t.TextPosition = TextTop
		t.TextColor = "white"
		t.TextSize = 14
		t.Text = make([]string, len(stars))
		t.Hover = make([]string, len(stars))
		if len(stars) > 0 {
			t.Text[0] = fmt.Sprintf(c.labels.YearCount, rec.Year, rec.Count)
		}
		hover := fmt.Sprintf(c.labels.ClusterHover, rec.Year, rec.Count)
		for k := range t.Hover {
			t.Hover[k] = hover
		}
		fr.add(t)
	}

	return fr
}

func (c *Star) Layout() Layout {
	axis := func(title string) Axis {
		return Axis{Visible: true, Range: [2]float64{-starAxisHalfRange, starAxisHalfRange}, Grid: true, Title: title}
	}
	return Layout{
		Title:      c.title(),
		TitleSize:  24,
		TitleColor: "white",
		Font:       "Arial",
		X:          axis(c.labels.XAxis),
		Y:          axis(c.labels.YAxis),
		Background: "rgb(0,0,0)",
		Margin:     Margin{Left: 20, Right: 20, Top: 80, Bottom: 20},
		Buttons: []Button{
			{Label: c.labels.Play, Action: ActionPlay, FrameMS: 50, TransitionMS: 30, Easing: "cubic-in-out"},
		},
	}
}
