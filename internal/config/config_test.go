package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/typhoonviz/internal/chart"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chart != "all" {
		t.Errorf("expected chart all, got %s", cfg.Chart)
	}
	if cfg.Flow.Curves != 15 || cfg.Flow.CurvePoints != 100 {
		t.Errorf("unexpected flow defaults: %+v", cfg.Flow)
	}
	if !cfg.OpenBrowser() {
		t.Error("open should default to true")
	}
	if cfg.Labels != "" {
		t.Errorf("labels should default to each chart's own, got %s", cfg.Labels)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typhoonviz.yaml")
	open := false

	cfg := DefaultConfig()
	cfg.Chart = "heart"
	cfg.Seed = 99
	cfg.Open = &open
	cfg.Counts = map[int]int{2002: 6, 2003: 8}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Chart != "heart" || loaded.Seed != 99 {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if loaded.OpenBrowser() {
		t.Error("expected open false after round trip")
	}

	ds, err := loaded.Dataset()
	if err != nil {
		t.Fatalf("dataset failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 records, got %d", ds.Len())
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Merge(GetPreset("flow", "dense"))

	if cfg.Flow.Curves != 25 {
		t.Errorf("expected preset curves 25, got %d", cfg.Flow.Curves)
	}
	if cfg.Seed != 5 {
		t.Errorf("zero preset seed must not override, got %d", cfg.Seed)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("expected out dir kept, got %s", cfg.OutDir)
	}

	cfg.Merge(nil)
	if cfg.Frames != 150 {
		t.Errorf("expected frames 150, got %d", cfg.Frames)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("heart", "zh")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Labels != "zh" {
		t.Errorf("expected labels zh, got %s", cfg.Labels)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("heart", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "en") != nil {
		t.Error("expected nil for nonexistent chart")
	}
}

func TestListPresets(t *testing.T) {
	tests := []struct {
		chart string
		want  []string
	}{
		{"heart", []string{"en", "slow", "zh"}},
		{"interactive", []string{"quick", "zh"}},
		{"nonexistent", nil},
	}

	for _, tt := range tests {
		got := ListPresets(tt.chart)
		if len(got) != len(tt.want) {
			t.Errorf("chart %s: expected %v, got %v", tt.chart, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("chart %s: expected %v, got %v", tt.chart, tt.want, got)
			}
		}
	}
}

func TestPresetsCoverRegistry(t *testing.T) {
	for _, name := range chart.NewRegistry().Names() {
		if len(ListPresets(name)) == 0 {
			t.Errorf("chart %s has no presets", name)
		}
	}
}

func TestChartOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.Labels = "zh"

	opts, err := cfg.ChartOptions()
	if err != nil {
		t.Fatalf("options failed: %v", err)
	}
	if opts.Labels == nil || opts.Labels.Name != "zh" {
		t.Errorf("expected zh labels, got %+v", opts.Labels)
	}
	if opts.Rand == nil {
		t.Fatal("expected a random source")
	}

	again, _ := cfg.ChartOptions()
	if opts.Rand.Int63() != again.Rand.Int63() {
		t.Error("same seed should yield the same sequence")
	}

	cfg.Labels = "fr"
	if _, err := cfg.ChartOptions(); err == nil {
		t.Error("expected error for unknown labels")
	}
}
