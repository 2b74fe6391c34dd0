package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/typhoonviz/internal/chart"
)

// viewport maps figure coordinates onto the SVG pixel grid, y up.
type viewport struct {
	layout        chart.Layout
	width, height int
}

func (v viewport) px(x, y float64) (int, int) {
	xr, yr := v.layout.X.Range, v.layout.Y.Range
	rangeX := xr[1] - xr[0]
	rangeY := yr[1] - yr[0]
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	px := (x - xr[0]) / rangeX * float64(v.width)
	py := float64(v.height) - (y-yr[0])/rangeY*float64(v.height)
	return int(math.Round(px)), int(math.Round(py))
}

// Snapshot draws a single frame as SVG. Lines become polylines and markers
// circles; hover text and controls are dropped.
func Snapshot(w io.Writer, fr chart.Frame, layout chart.Layout, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid snapshot size %dx%d", width, height)
	}
	if err := fr.Validate(); err != nil {
		return err
	}

	v := viewport{layout: layout, width: width, height: height}
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(layout.Title)
	canvas.Rect(0, 0, width, height, "fill:"+layout.Background)

	if layout.X.Visible && layout.X.Grid {
		drawGrid(canvas, v)
	}

	for _, t := range fr.Traces {
		if t.Opacity <= 0 {
			continue
		}
		canvas.Gstyle(fmt.Sprintf("opacity:%.3f", t.Opacity))
		if t.Mode == chart.ModeLines {
			drawPolyline(canvas, v, t)
		} else {
			drawMarkers(canvas, v, t)
		}
		canvas.Gend()
	}

	canvas.Text(width/2, 30, layout.Title, fmt.Sprintf("fill:%s;font-size:%.0fpx;font-family:%s;text-anchor:middle", layout.TitleColor, layout.TitleSize, layout.Font))
	canvas.End()
	return nil
}

func drawGrid(canvas *svg.SVG, v viewport) {
	xr, yr := v.layout.X.Range, v.layout.Y.Range
	style := "stroke:rgb(128,128,128);stroke-opacity:0.3;stroke-width:1"
	for x := math.Ceil(xr[0]); x <= xr[1]; x += 2 {
		x1, y1 := v.px(x, yr[0])
		x2, y2 := v.px(x, yr[1])
		canvas.Line(x1, y1, x2, y2, style)
	}
	for y := math.Ceil(yr[0]); y <= yr[1]; y += 2 {
		x1, y1 := v.px(xr[0], y)
		x2, y2 := v.px(xr[1], y)
		canvas.Line(x1, y1, x2, y2, style)
	}
}

func drawPolyline(canvas *svg.SVG, v viewport, t chart.Trace) {
	if len(t.X) < 2 || t.Width <= 0 {
		return
	}
	xs := make([]int, len(t.X))
	ys := make([]int, len(t.Y))
	for i := range t.X {
		xs[i], ys[i] = v.px(t.X[i], t.Y[i])
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f;stroke-linejoin:round", t.Color, t.Width))
}

func drawMarkers(canvas *svg.SVG, v viewport, t chart.Trace) {
	for i := range t.X {
		x, y := v.px(t.X[i], t.Y[i])

		size := t.Size
		if i < len(t.Sizes) {
			size = t.Sizes[i]
		}
		color := t.Color
		if i < len(t.Colors) {
			color = t.Colors[i]
		}

		style := "fill:" + color
		if t.Outline != nil {
			style += fmt.Sprintf(";stroke:%s;stroke-width:%.0f", t.Outline.Color, t.Outline.Width)
		}
		canvas.Circle(x, y, max(1, int(math.Round(size/2))), style)

		if t.Mode == chart.ModeMarkersText && i < len(t.Text) && t.Text[i] != "" {
			dy := 4
			if t.TextPosition == chart.TextTop {
				dy = -int(size/2) - 4
			}
			textSize := t.TextSize
			if textSize == 0 {
				textSize = 12
			}
			canvas.Text(x, y+dy, t.Text[i], fmt.Sprintf("fill:%s;font-size:%.0fpx;text-anchor:middle", t.TextColor, textSize))
		}
	}
}
