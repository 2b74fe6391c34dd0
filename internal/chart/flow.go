package chart

import (
	"fmt"

	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
	"github.com/san-kum/typhoonviz/internal/palette"
	"github.com/san-kum/typhoonviz/internal/timing"
)

const (
	flowFrames     = 120
	flowStars      = 100
	flowSway       = 0.3
	flowMarkerSize = 2
)

var (
	flowStagger = timing.Stagger{Delay: 3, Duration: 20}
	flowWave    = timing.Wave{FramePeriod: 20, ItemPeriod: 2}
)

// Flow draws smoke lines rising from each year's anchor, fading in year by year.
type Flow struct {
	base
}

func NewFlow(ds *dataset.Dataset, opts Options) *Flow {
	return &Flow{base: newBase("flow", "typhoon_flow_animation.html", flowFrames, Chinese, AssembleDropFirst, ds, opts)}
}

func (c *Flow) Frame(f int) Frame {
	fr := c.newFrame(f)

	stars := geom.StarField(c.rng, geom.FieldParams{
		Area:    geom.Square(10),
		Count:   flowStars,
		SizeMin: 1,
		SizeMax: 2,
		Color:   geom.Fixed(palette.White.WithAlpha(0.3)),
	})
	fr.add(Markers(stars))

	n := c.ds.Len()
	maxCount := c.ds.MaxCount()
	for i, rec := range c.ds.Records() {
		anchor := geom.Point{X: dataset.BaseX(i, n), Y: dataset.BaseY(rec.Count, maxCount)}
		curves := geom.GenerateFlowCurves(c.rng, anchor, c.flow)

		progress := flowStagger.Progress(f, i)
		fr.Progress = append(fr.Progress, progress)
		phase := flowWave.Phase(f, i)

		for _, cv := range curves {
			line := Line(geom.Sway(cv.Points, flowSway, phase, 0, 0), cv.Width, palette.White.WithAlpha(cv.Opacity*progress).String())
			line.Spline = true
			line.Year = rec.Year
			fr.add(line)
		}

		label := fmt.Sprintf(c.labels.YearCount, rec.Year, rec.Count)
		m := Marker(anchor, float64(rec.Count*flowMarkerSize), palette.Gold.WithAlpha(0.8).String(), label)
		m.Outline = &Outline{Color: "white", Width: 1}
		m.TextPosition = TextTop
		m.TextColor = "white"
		m.TextSize = 12
		m.Hover = []string{label}
		m.Opacity = progress
		m.Year = rec.Year
		fr.add(m)
	}

	return fr
}

func (c *Flow) Layout() Layout {
	return Layout{
		Title:      c.title(),
		TitleSize:  24,
		TitleColor: "white",
		Font:       "Arial",
		X:          Axis{Range: [2]float64{-10, 10}},
		Y:          Axis{Range: [2]float64{-10, 10}},
		Background: "rgb(0,0,0)",
		Margin:     Margin{Left: 20, Right: 20, Top: 80, Bottom: 20},
		Buttons: []Button{
			{Label: c.labels.Play, Action: ActionPlay, FrameMS: 50, TransitionMS: 30, Easing: "cubic-in-out"},
		},
	}
}
