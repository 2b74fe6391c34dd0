package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/config"
	"github.com/san-kum/typhoonviz/internal/observability"
	"github.com/san-kum/typhoonviz/internal/render"
	"github.com/san-kum/typhoonviz/internal/storage"
)

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	target := cfg.Chart
	if len(args) > 0 {
		target = args[0]
	}

	names, err := renderTargets(target, preset)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			if err := renderChart(cmd, name, metrics); err != nil {
				errs[idx] = fmt.Errorf("render %s: %w", name, err)
			}
		}(i, name)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func renderChart(cmd *cobra.Command, name string, metrics *observability.Metrics) error {
	c, cfg, _, err := buildChart(cmd, name)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	recorder := storage.NewRecorder()
	animator := chart.NewAnimator()
	animator.AddObserver(metrics)
	animator.AddObserver(recorder)
	animator.AddObserver(observability.FrameLogger{Logger: logger})

	logger.Info("render started", "chart", name, "frames", c.Frames(), "seed", cfg.Seed, "labels", c.Labels().Name)

	fig, stats, err := animator.Run(cmd.Context(), c)
	if err != nil {
		outcome := observability.OutcomeError
		if errors.Is(err, context.Canceled) {
			outcome = observability.OutcomeCanceled
		}
		metrics.ObserveRender(name, outcome, stats.Elapsed)
		return err
	}

	path, err := render.WriteHTMLFile(cfg.OutDir, c.Output(), fig, c.Labels().Name)
	if err != nil {
		metrics.ObserveRender(name, observability.OutcomeError, stats.Elapsed)
		return err
	}
	metrics.ObserveRender(name, observability.OutcomeSuccess, stats.Elapsed)

	logger.Info("render finished",
		"chart", name,
		"frames", stats.Frames,
		"primitives", stats.Traces,
		"points", stats.Points,
		"elapsed", stats.Elapsed,
		"path", path,
	)

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	renderID, err := st.Save(storage.RenderMetadata{
		Chart:      name,
		Seed:       cfg.Seed,
		Frames:     stats.Frames,
		Labels:     c.Labels().Name,
		Output:     path,
		Primitives: stats.Traces,
		Points:     stats.Points,
		Elapsed:    stats.Elapsed,
	}, recorder.Rows())
	if err != nil {
		return fmt.Errorf("save render: %w", err)
	}

	fmt.Printf("%s -> %s (render %s)\n", name, path, renderID)

	if cfg.OpenBrowser() {
		if err := openBrowser(path); err != nil {
			logger.Warn("could not open browser", "path", path, "error", err)
		}
	}
	return nil
}

// renderTargets expands target into chart names. For "all" with a preset,
// charts that do not define the preset are skipped.
func renderTargets(target, presetName string) ([]string, error) {
	if target == "" {
		target = config.DefaultChart
	}
	if target != config.DefaultChart {
		return []string{target}, nil
	}
	if presetName == "" {
		return registry.Names(), nil
	}

	var names []string
	for _, name := range registry.Names() {
		if config.GetPreset(name, presetName) != nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("unknown preset: %s (no chart defines it)", presetName)
	}
	return names, nil
}

// openBrowser hands path to the platform opener without waiting for it.
func openBrowser(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", path)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		c = exec.Command("xdg-open", path)
	}
	if err := c.Start(); err != nil {
		return err
	}
	go c.Wait() //nolint:errcheck // opener exit status is irrelevant
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	name := args[0]
	c, cfg, _, err := buildChart(cmd, name)
	if err != nil {
		return err
	}

	fr, err := chart.Replay(c, frameIndex)
	if err != nil {
		return err
	}

	path := snapshotOut
	if path == "" {
		path = fmt.Sprintf("%s_%d.svg", name, frameIndex)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.Snapshot(f, fr, c.Layout(), cfg.Snapshot.Width, cfg.Snapshot.Height); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	newLogger(cfg).Info("snapshot written", slog.String("chart", name), slog.Int("frame", frameIndex), slog.String("path", path))
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	ds, err := cfg.Dataset()
	if err != nil {
		return err
	}

	f, err := os.Create(summaryOut)
	if err != nil {
		return err
	}
	defer f.Close()

	first, last := ds.Span()
	title := fmt.Sprintf("Hong Kong typhoons per year (%d-%d)", first, last)
	if err := render.Summary(f, ds, title); err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	fmt.Printf("wrote %s\n", summaryOut)
	return nil
}
