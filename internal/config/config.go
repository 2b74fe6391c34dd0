package config

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
	"github.com/san-kum/typhoonviz/internal/observability"
)

const (
	DefaultChart     = "all"
	DefaultOutDir    = "."
	DefaultDataDir   = ".typhoonviz"
	DefaultSVGWidth  = 900
	DefaultSVGHeight = 700
	DefaultAddr      = ":8080"
)

type Config struct {
	Chart    string                  `yaml:"chart"`
	Seed     int64                   `yaml:"seed"`
	Frames   int                     `yaml:"frames"`
	Labels   string                  `yaml:"labels"`
	OutDir   string                  `yaml:"out_dir"`
	Open     *bool                   `yaml:"open,omitempty"`
	DataDir  string                  `yaml:"data_dir"`
	Addr     string                  `yaml:"addr"`
	Flow     FlowConfig              `yaml:"flow"`
	Snapshot SnapshotConfig          `yaml:"snapshot"`
	Log      observability.LogConfig `yaml:"log"`
	// Counts replaces the built-in Hong Kong table when set.
	Counts map[int]int `yaml:"counts,omitempty"`
}

type FlowConfig struct {
	Curves      int `yaml:"curves"`
	CurvePoints int `yaml:"curve_points"`
}

type SnapshotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Chart:   DefaultChart,
		OutDir:  DefaultOutDir,
		DataDir: DefaultDataDir,
		Addr:    DefaultAddr,
		Flow: FlowConfig{
			Curves:      geom.DefaultFlowCurves,
			CurvePoints: geom.DefaultFlowPoints,
		},
		Snapshot: SnapshotConfig{
			Width:  DefaultSVGWidth,
			Height: DefaultSVGHeight,
		},
		Log: observability.LogConfig{Level: "info", Format: "text"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge copies the non-zero fields of o over c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Chart != "" {
		c.Chart = o.Chart
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Frames != 0 {
		c.Frames = o.Frames
	}
	if o.Labels != "" {
		c.Labels = o.Labels
	}
	if o.OutDir != "" {
		c.OutDir = o.OutDir
	}
	if o.Open != nil {
		open := *o.Open
		c.Open = &open
	}
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.Flow.Curves != 0 {
		c.Flow.Curves = o.Flow.Curves
	}
	if o.Flow.CurvePoints != 0 {
		c.Flow.CurvePoints = o.Flow.CurvePoints
	}
	if o.Snapshot.Width != 0 {
		c.Snapshot.Width = o.Snapshot.Width
	}
	if o.Snapshot.Height != 0 {
		c.Snapshot.Height = o.Snapshot.Height
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Log.Format != "" {
		c.Log.Format = o.Log.Format
	}
	if len(o.Counts) > 0 {
		c.Counts = make(map[int]int, len(o.Counts))
		for y, n := range o.Counts {
			c.Counts[y] = n
		}
	}
}

// OpenBrowser reports whether rendered files should be opened. Unset means yes.
func (c *Config) OpenBrowser() bool {
	return c.Open == nil || *c.Open
}

// Dataset returns the configured counts or the built-in table.
func (c *Config) Dataset() (*dataset.Dataset, error) {
	if len(c.Counts) == 0 {
		return dataset.HongKong(), nil
	}
	return dataset.FromCounts(c.Counts)
}

// ChartOptions builds chart options with a generator seeded from c.Seed.
// An empty Labels keeps each chart's own default.
func (c *Config) ChartOptions() (chart.Options, error) {
	opts := chart.Options{
		Frames: c.Frames,
		Flow:   geom.FlowParams{NumCurves: c.Flow.Curves, CurvePoints: c.Flow.CurvePoints},
		Rand:   rand.New(rand.NewSource(c.Seed)),
	}
	if c.Labels != "" {
		ls, err := chart.Labels(c.Labels)
		if err != nil {
			return chart.Options{}, err
		}
		opts.Labels = &ls
	}
	return opts, nil
}
