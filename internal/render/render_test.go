package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/dataset"
)

func figure(t *testing.T, name string, frames int) *chart.Figure {
	t.Helper()
	c, err := chart.NewRegistry().Get(name, dataset.HongKong(), chart.Options{
		Frames: frames,
		Rand:   rand.New(rand.NewSource(11)),
	})
	require.NoError(t, err)
	fig, _, err := chart.NewAnimator().Run(context.Background(), c)
	require.NoError(t, err)
	return fig
}

func TestWriteHTML(t *testing.T) {
	for _, name := range []string{"flow", "heart", "interactive", "star"} {
		t.Run(name, func(t *testing.T) {
			fig := figure(t, name, 4)

			var buf bytes.Buffer
			require.NoError(t, WriteHTML(&buf, fig, "en"))
			out := buf.String()

			assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
			assert.Contains(t, out, "<title>"+fig.Layout.Title+"</title>")
			assert.Contains(t, out, `const FIGURE = {"chart":"`+name+`"`)
			assert.Contains(t, out, `"frames":[{"name":"`)
			assert.Contains(t, out, "background: "+fig.Layout.Background)
			assert.NotContains(t, out, "ZgotmplZ")
		})
	}
}

func TestWriteHTMLEscapesScript(t *testing.T) {
	fig := figure(t, "flow", 2)
	fig.Layout.Title = "</script><b>x</b>"

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, fig, "zh"))
	assert.Equal(t, 1, strings.Count(buf.String(), "</script>"))
	assert.Contains(t, buf.String(), `lang="zh"`)
}

func TestWriteHTMLRejectsNaN(t *testing.T) {
	fig := figure(t, "flow", 2)
	fig.Data.Traces[0].X[0] = math.NaN()

	err := WriteHTML(&bytes.Buffer{}, fig, "en")
	assert.Error(t, err)
	assert.Error(t, WriteHTML(&bytes.Buffer{}, nil, "en"))
}

func TestWriteHTMLFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fig := figure(t, "star", 3)

	path, err := WriteHTMLFile(dir, "typhoon_star_animation.html", fig, "zh")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "typhoon_star_animation.html", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "香港台风数据星空图 (2002-2023)")
}

func TestSnapshot(t *testing.T) {
	fig := figure(t, "star", 60)

	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, fig.Frames[40], fig.Layout, 800, 600))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, "</svg>")

	// well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestSnapshotLines(t *testing.T) {
	fig := figure(t, "heart", 2)

	var buf bytes.Buffer
	require.NoError(t, Snapshot(&buf, fig.Data, fig.Layout, 400, 400))
	assert.Contains(t, buf.String(), "<polyline")
}

func TestSnapshotInvalidSize(t *testing.T) {
	fig := figure(t, "flow", 2)
	assert.Error(t, Snapshot(&bytes.Buffer{}, fig.Data, fig.Layout, 0, 100))
}

func TestViewport(t *testing.T) {
	v := viewport{layout: chart.Layout{
		X: chart.Axis{Range: [2]float64{-10, 10}},
		Y: chart.Axis{Range: [2]float64{-10, 10}},
	}, width: 200, height: 100}

	x, y := v.px(-10, -10)
	assert.Equal(t, 0, x)
	assert.Equal(t, 100, y)

	x, y = v.px(0, 0)
	assert.Equal(t, 100, x)
	assert.Equal(t, 50, y)
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, dataset.HongKong(), "Hong Kong typhoons"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
