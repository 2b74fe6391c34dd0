package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Colormap interpolates between evenly spaced anchor colors in CIE L*a*b*.
type Colormap struct {
	Name    string
	anchors []colorful.Color
}

func NewColormap(name string, hexes ...string) *Colormap {
	anchors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		anchors[i] = mustHex(h)
	}
	return &Colormap{Name: name, anchors: anchors}
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}

// Purples approximates the sequential purple map from matplotlib.
var Purples = NewColormap("purples",
	"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8",
	"#807dba", "#6a51a3", "#54278f", "#3f007d",
)

// At samples the map at x in [0, 1]. Values outside are clamped.
func (m *Colormap) At(x float64) colorful.Color {
	x = clamp01(x)
	if len(m.anchors) == 1 {
		return m.anchors[0]
	}

	pos := x * float64(len(m.anchors)-1)
	i := int(pos)
	if i >= len(m.anchors)-1 {
		return m.anchors[len(m.anchors)-1]
	}
	return m.anchors[i].BlendLab(m.anchors[i+1], pos-float64(i))
}

// Layers returns n colors sampled over [lo, 1], the first lightest.
func (m *Colormap) Layers(n int, lo float64) []RGBA {
	out := make([]RGBA, n)
	den := n - 1
	if den < 1 {
		den = 1
	}
	for i := range out {
		out[i] = FromColorful(m.At(lo+(1-lo)*float64(i)/float64(den)), 1)
	}
	return out
}
