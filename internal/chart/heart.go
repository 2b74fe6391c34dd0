package chart

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
	"github.com/san-kum/typhoonviz/internal/palette"
)

const (
	heartFrames     = 60
	heartSamples    = 200
	heartBgStars    = 120
	heartInnerStars = 60
	heartLineWidth  = 6
	heartMarkerSize = 18
	heartMinScale   = 0.7
	heartMaxScale   = 1.3
	heartColorStart = 0.4
)

// Heart draws one heart outline per year, scaled by count and rotating a
// full turn over the animation.
type Heart struct {
	base
	scales  []float64
	colors  []palette.RGBA
	bgStars geom.Stars
	inner   geom.Stars
}

func NewHeart(ds *dataset.Dataset, opts Options) *Heart {
	c := &Heart{base: newBase("heart", "typhoon_heart_animation.html", heartFrames, English, AssembleKeepAll, ds, opts)}

	c.scales = dataset.HeartScales(ds.Counts(), heartMinScale, heartMaxScale)
	c.colors = palette.Purples.Layers(ds.Len(), heartColorStart)

	c.bgStars = geom.StarField(c.rng, geom.FieldParams{
		Area:    geom.Square(2.2),
		Count:   heartBgStars,
		SizeMin: 2,
		SizeMax: 7,
		Color: func(rng *rand.Rand, _ int) palette.RGBA {
			return palette.Random(rng, palette.Range{120, 180}, palette.Range{80, 120}, palette.Range{180, 255}, palette.AlphaRange{0.3, 0.8})
		},
	})
	c.inner = geom.HeartStars(c.rng, heartInnerStars)

	return c
}

// Angle is the rotation applied at frame f.
func (c *Heart) Angle(f int) float64 {
	return 2 * math.Pi * float64(f) / float64(c.frames)
}

func (c *Heart) Frame(f int) Frame {
	fr := c.newFrame(f)
	angle := c.Angle(f)

	bg := Markers(c.bgStars)
	bg.Opacity = 0.7
	inner := Markers(c.inner)
	inner.Opacity = 0.85
	fr.add(bg, inner)

	n := c.ds.Len()
	den := float64(n - 1)
	if den < 1 {
		den = 1
	}

	records := c.ds.Records()
	for i, rec := range records {
		outline := geom.HeartOutline(c.scales[i], heartSamples).Rotate(angle)
		layer := Line(outline, heartLineWidth, c.colors[i].Hex())
		layer.Name = fmt.Sprint(rec.Year)
		layer.Year = rec.Year
		layer.Opacity = 0.45 + 0.5*float64(i)/den
		fr.add(layer)
		fr.Progress = append(fr.Progress, 1)
	}

	outer := geom.HeartOutline(c.scales[n-1], heartSamples).Rotate(angle)
	markers := Trace{
		Mode:         ModeMarkersText,
		Size:         heartMarkerSize,
		Outline:      &Outline{Color: "white", Width: 2},
		Opacity:      0.95,
		TextPosition: TextTop,
		TextColor:    "white",
	}
	for i, rec := range records {
		p := outer[i*heartSamples/n]
		markers.X = append(markers.X, p.X)
		markers.Y = append(markers.Y, p.Y)
		markers.Colors = append(markers.Colors, c.colors[i].Hex())
		text := fmt.Sprintf(c.labels.HeartMarker, rec.Year, rec.Count)
		markers.Text = append(markers.Text, text)
		markers.Hover = append(markers.Hover, text)
	}
	fr.add(markers)

	return fr
}

func (c *Heart) Layout() Layout {
	return Layout{
		Title:      c.title(),
		TitleSize:  18,
		TitleColor: "white",
		Font:       "Arial",
		X:          Axis{Range: [2]float64{-2.5, 2.5}},
		Y:          Axis{Range: [2]float64{-2.5, 2.5}},
		Background: "rgb(20,10,40)",
		Margin:     Margin{Left: 40, Right: 40, Top: 80, Bottom: 40},
		Buttons: []Button{
			{Label: c.labels.Play, Action: ActionPlay, FrameMS: 80},
		},
	}
}
