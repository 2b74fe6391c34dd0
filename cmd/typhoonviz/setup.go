package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/config"
	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/observability"
)

// loadConfig applies, in order: defaults, the config file, the chart preset,
// and flags the user set explicitly. An empty chartName skips the preset.
func loadConfig(cmd *cobra.Command, chartName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && chartName != "" {
		p := config.GetPreset(chartName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(chartName))
		}
		cfg.Merge(p)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("labels") {
		cfg.Labels = labels
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = outDir
	}
	if flags.Changed("open") {
		open := openFile
		cfg.Open = &open
	}
	if flags.Changed("addr") {
		cfg.Addr = addr
	}

	cfg.Log = cfg.Log.FromEnv()
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.Log, os.Stderr)
}

// buildChart resolves the config for name and constructs the chart.
func buildChart(cmd *cobra.Command, name string) (chart.Chart, *config.Config, *dataset.Dataset, error) {
	if !registry.Has(name) {
		_, err := registry.Get(name, nil, chart.Options{})
		return nil, nil, nil, err
	}

	cfg, err := loadConfig(cmd, name)
	if err != nil {
		return nil, nil, nil, err
	}

	ds, err := cfg.Dataset()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dataset: %w", err)
	}

	opts, err := cfg.ChartOptions()
	if err != nil {
		return nil, nil, nil, err
	}

	c, err := registry.Get(name, ds, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return c, cfg, ds, nil
}
