package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/typhoonviz/internal/geom"
)

// Series is a coordinate list. It marshals with two decimals, which is
// below one pixel at every chart's axis range.
type Series []float64

func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, len(s)*6+2)
	buf = append(buf, '[')
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: series value %d", geom.ErrInvalidGeometry, i)
		}
		buf = strconv.AppendFloat(buf, math.Round(v*100)/100, 'f', -1, 64)
	}
	return append(buf, ']'), nil
}

type Mode string

const (
	ModeMarkers     Mode = "markers"
	ModeLines       Mode = "lines"
	ModeMarkersText Mode = "markers+text"
)

const (
	TextTop    = "top center"
	TextMiddle = "middle center"
)

type Outline struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Trace is one drawable primitive: a point cloud or a polyline.
type Trace struct {
	Name         string   `json:"name,omitempty"`
	Mode         Mode     `json:"mode"`
	X            Series   `json:"x"`
	Y            Series   `json:"y"`
	Size         float64  `json:"size,omitempty"`
	Sizes        Series   `json:"sizes,omitempty"`
	Color        string   `json:"color,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	Width        float64  `json:"width,omitempty"`
	Spline       bool     `json:"spline,omitempty"`
	Symbol       string   `json:"symbol,omitempty"`
	Outline      *Outline `json:"outline,omitempty"`
	Opacity      float64  `json:"opacity"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textPosition,omitempty"`
	TextColor    string   `json:"textColor,omitempty"`
	TextSize     float64  `json:"textSize,omitempty"`
	Hover        []string `json:"hover,omitempty"`
	Year         int      `json:"year,omitempty"`
	Selectable   bool     `json:"selectable,omitempty"`
}

// Line builds a polyline trace.
func Line(pts geom.Points, width float64, color string) Trace {
	xs, ys := pts.XY()
	return Trace{Mode: ModeLines, X: xs, Y: ys, Width: width, Color: color, Opacity: 1}
}

// Markers builds a point cloud trace with per-point sizes and colors.
func Markers(stars geom.Stars) Trace {
	xs, ys := stars.Points().XY()
	return Trace{Mode: ModeMarkers, X: xs, Y: ys, Sizes: stars.Sizes(), Colors: stars.Colors(), Opacity: 1}
}

// Marker builds a single labelled point.
func Marker(p geom.Point, size float64, color, text string) Trace {
	return Trace{
		Mode:    ModeMarkersText,
		X:       Series{p.X},
		Y:       Series{p.Y},
		Size:    size,
		Color:   color,
		Text:    []string{text},
		Opacity: 1,
	}
}

func (t Trace) NumPoints() int { return len(t.X) }

func (t Trace) Points() geom.Points {
	pts := make(geom.Points, len(t.X))
	for i := range t.X {
		pts[i] = geom.Point{X: t.X[i], Y: t.Y[i]}
	}
	return pts
}

// Frame is the complete set of primitives for one time step. Progress holds
// each dataset item's appearance progress at this frame.
type Frame struct {
	Name     string    `json:"name"`
	Traces   []Trace   `json:"traces"`
	Progress []float64 `json:"-"`
}

func (f *Frame) add(t ...Trace) {
	f.Traces = append(f.Traces, t...)
}

func (f Frame) NumPoints() int {
	n := 0
	for _, t := range f.Traces {
		n += t.NumPoints()
	}
	return n
}

// MeanProgress averages Progress; frames without items report 1.
func (f Frame) MeanProgress() float64 {
	if len(f.Progress) == 0 {
		return 1
	}
	sum := 0.0
	for _, p := range f.Progress {
		sum += p
	}
	return sum / float64(len(f.Progress))
}

func (f Frame) Validate() error {
	for i, t := range f.Traces {
		if len(t.X) != len(t.Y) {
			return fmt.Errorf("trace %d: %d x values, %d y values", i, len(t.X), len(t.Y))
		}
		if err := t.Points().Validate(); err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return nil
}

type Axis struct {
	Visible bool       `json:"visible"`
	Range   [2]float64 `json:"range"`
	Grid    bool       `json:"grid,omitempty"`
	Title   string     `json:"title,omitempty"`
}

const (
	ActionPlay  = "play"
	ActionPause = "pause"
)

type Button struct {
	Label        string `json:"label"`
	Action       string `json:"action"`
	FrameMS      int    `json:"frameMs"`
	TransitionMS int    `json:"transitionMs"`
	Easing       string `json:"easing,omitempty"`
}

// YearFilter shows only traces whose year is in [From, To]. A zero range
// shows everything.
type YearFilter struct {
	Label string `json:"label"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}

func (y YearFilter) Includes(year int) bool {
	if y.From == 0 && y.To == 0 {
		return true
	}
	return year == 0 || (year >= y.From && year <= y.To)
}

type Margin struct {
	Left   int `json:"l"`
	Right  int `json:"r"`
	Top    int `json:"t"`
	Bottom int `json:"b"`
}

type Layout struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	TitleSize   float64      `json:"titleSize"`
	TitleColor  string       `json:"titleColor"`
	Font        string       `json:"font"`
	X           Axis         `json:"xaxis"`
	Y           Axis         `json:"yaxis"`
	Background  string       `json:"background"`
	Margin      Margin       `json:"margin"`
	Buttons     []Button     `json:"buttons"`
	ButtonColor string       `json:"buttonColor,omitempty"`
	Filters     []YearFilter `json:"filters,omitempty"`
	Annotation  string       `json:"annotation,omitempty"`
}

// Figure is the exporter's input: the initial traces plus the animation frames.
type Figure struct {
	Chart  string  `json:"chart"`
	Layout Layout  `json:"layout"`
	Data   Frame   `json:"data"`
	Frames []Frame `json:"frames"`
}
