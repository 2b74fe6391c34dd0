package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/config"
)

func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		seed, frames, labels = 0, 0, ""
		dataDir, outDir = config.DefaultDataDir, config.DefaultOutDir
		configFile, preset = "", ""
	})

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int64Var(&seed, "seed", 0, "")
	cmd.Flags().IntVar(&frames, "frames", 0, "")
	cmd.Flags().StringVar(&labels, "labels", "", "")
	cmd.Flags().StringVar(&dataDir, "data", config.DefaultDataDir, "")
	cmd.Flags().StringVar(&outDir, "out-dir", config.DefaultOutDir, "")
	return cmd
}

func TestLoadConfigFlagsOverridePreset(t *testing.T) {
	cmd := newTestCommand(t)
	preset = "dense"
	if err := cmd.Flags().Set("frames", "7"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("seed", "42"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd, "flow")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Frames != 7 {
		t.Errorf("expected frames 7, got %d", cfg.Frames)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Flow.Curves != 25 {
		t.Errorf("expected preset curves 25, got %d", cfg.Flow.Curves)
	}
}

func TestLoadConfigUnknownPreset(t *testing.T) {
	cmd := newTestCommand(t)
	preset = "nope"

	if _, err := loadConfig(cmd, "heart"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if _, err := loadConfig(cmd, ""); err != nil {
		t.Fatalf("preset should be ignored without a chart: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	cmd := newTestCommand(t)
	path := filepath.Join(t.TempDir(), "typhoonviz.yaml")

	file := config.DefaultConfig()
	file.DataDir = "history"
	file.Frames = 30
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}
	configFile = path

	cfg, err := loadConfig(cmd, "")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.DataDir != "history" {
		t.Errorf("expected data dir from file, got %q", cfg.DataDir)
	}
	if cfg.Frames != 30 {
		t.Errorf("expected frames 30, got %d", cfg.Frames)
	}

	if err := cmd.Flags().Set("data", "elsewhere"); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(cmd, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "elsewhere" {
		t.Errorf("flag should win over file, got %q", cfg.DataDir)
	}
}

func TestBuildChart(t *testing.T) {
	cmd := newTestCommand(t)
	preset = "en"

	c, cfg, ds, err := buildChart(cmd, "flow")
	if err != nil {
		t.Fatalf("buildChart failed: %v", err)
	}
	if c.Name() != "flow" {
		t.Errorf("expected flow chart, got %s", c.Name())
	}
	if c.Labels().Name != "en" {
		t.Errorf("expected en labels from preset, got %s", c.Labels().Name)
	}
	if cfg.Labels != "en" {
		t.Errorf("expected config labels en, got %q", cfg.Labels)
	}
	if ds.Len() == 0 {
		t.Error("expected built-in dataset")
	}
}

func TestBuildChartUnknown(t *testing.T) {
	cmd := newTestCommand(t)

	_, _, _, err := buildChart(cmd, "spiral")
	if !errors.Is(err, chart.ErrUnknownChart) {
		t.Fatalf("expected ErrUnknownChart, got %v", err)
	}
}
