package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/storage"
)

func runPlot(cmd *cobra.Command, args []string) error {
	name := args[0]
	c, cfg, ds, err := buildChart(cmd, name)
	if err != nil {
		return err
	}

	n := ds.Len()
	items := []int{0, n / 2, n - 1}
	progress := make([][]float64, len(items))

	animator := chart.NewAnimator()
	animator.SetValidate(false)
	animator.AddObserver(chart.ObserverFunc(func(_ string, _ int, f chart.Frame) {
		for k, item := range items {
			p := 0.0
			if item < len(f.Progress) {
				p = f.Progress[item]
			}
			progress[k] = append(progress[k], p)
		}
	}))
	if _, _, err := animator.Run(cmd.Context(), c); err != nil {
		return err
	}

	counts := make([]float64, n)
	for i, v := range ds.Counts() {
		counts[i] = float64(v)
	}
	first, last := ds.Span()

	fmt.Printf("chart: %s\n", name)
	fmt.Printf("seed: %d\n", cfg.Seed)
	fmt.Printf("frames: %d\n\n", c.Frames())

	fmt.Println(asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("typhoons per year %d-%d", first, last)),
	))
	fmt.Println()

	years := ds.Years()
	fmt.Println(asciigraph.PlotMany(progress,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Yellow, asciigraph.Cyan),
		asciigraph.Caption(fmt.Sprintf("appearance progress of %d, %d and %d", years[items[0]], years[items[1]], years[items[2]])),
	))
	return nil
}

func listRenders(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHART\tTIME\tFRAMES\tLABELS\tSEED\tELAPSED")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
			r.ID,
			r.Chart,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Frames,
			r.Labels,
			r.Seed,
			r.Elapsed.Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func showRender(cmd *cobra.Command, args []string) error {
	renderID := args[0]

	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)

	if asJSON {
		return st.ExportJSON(os.Stdout, renderID)
	}

	meta, err := st.Load(renderID)
	if err != nil {
		return err
	}
	rows, err := st.LoadFrames(renderID)
	if err != nil {
		return err
	}

	fmt.Printf("render: %s\n", meta.ID)
	fmt.Printf("chart: %s\n", meta.Chart)
	fmt.Printf("time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("seed: %d\n", meta.Seed)
	fmt.Printf("labels: %s\n", meta.Labels)
	fmt.Printf("output: %s\n", meta.Output)
	fmt.Printf("frames: %d (primitives %d, points %d)\n\n", meta.Frames, meta.Primitives, meta.Points)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "FRAME\tPRIMITIVES\tPOINTS\tPROGRESS\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.3f\t\n", r.Frame, r.Primitives, r.Points, r.Progress)
	}
	return w.Flush()
}

func listCharts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	ds, err := cfg.Dataset()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHART\tOUTPUT\tFRAMES\tLABELS")
	for _, name := range registry.Names() {
		c, err := registry.Get(name, ds, chart.Options{})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, c.Output(), c.Frames(), c.Labels().Name)
	}
	return w.Flush()
}
