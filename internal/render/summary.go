package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/typhoonviz/internal/dataset"
)

var (
	summaryBar  = color.RGBA{R: 255, G: 215, A: 255}
	summaryLine = color.RGBA{R: 84, G: 39, B: 143, A: 255}
)

// SummaryPlot builds a bar chart of typhoon counts per year.
func SummaryPlot(ds *dataset.Dataset, title string) (*plot.Plot, error) {
	values := make(plotter.Values, 0, ds.Len())
	years := make([]string, 0, ds.Len())
	for _, rec := range ds.Records() {
		values = append(values, float64(rec.Count))
		years = append(years, strconv.Itoa(rec.Year))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Typhoons"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Color = summaryBar
	bars.LineStyle.Color = summaryLine
	bars.LineStyle.Width = vg.Points(0.5)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(years...)
	return p, nil
}

// Summary writes the counts bar chart as a PNG.
func Summary(w io.Writer, ds *dataset.Dataset, title string) error {
	p, err := SummaryPlot(ds, title)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}
