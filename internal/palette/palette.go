// Package palette formats colors for the chart player and samples the
// sequential colormaps used by the heart layers.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit color with a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	White = RGBA{255, 255, 255, 1}
	Gold  = RGBA{255, 215, 0, 1}
	Black = RGBA{0, 0, 0, 1}
)

// String renders the color as a CSS rgba() value with alpha rounded to 3 places.
func (c RGBA) String() string {
	a := math.Round(clamp01(c.A)*1000) / 1000
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(a, 'f', -1, 64))
}

func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// Hex drops the alpha channel.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func FromColorful(c colorful.Color, alpha float64) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: clamp01(alpha)}
}

// ParseHex accepts #rgb or #rrggbb.
func ParseHex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("palette: %w", err)
	}
	return FromColorful(c, 1), nil
}

// Range is an inclusive integer channel range.
type Range [2]int

// AlphaRange is a half-open alpha range.
type AlphaRange [2]float64

// Random draws each channel uniformly from its range.
func Random(rng *rand.Rand, r, g, b Range, a AlphaRange) RGBA {
	return RGBA{
		R: uint8(randInt(rng, r)),
		G: uint8(randInt(rng, g)),
		B: uint8(randInt(rng, b)),
		A: a[0] + rng.Float64()*(a[1]-a[0]),
	}
}

func randInt(rng *rand.Rand, r Range) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
