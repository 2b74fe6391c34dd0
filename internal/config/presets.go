package config

import "sort"

var Presets = map[string]map[string]*Config{
	"flow": {
		"dense": {Frames: 150, Flow: FlowConfig{Curves: 25, CurvePoints: 150}},
		"calm":  {Frames: 180, Flow: FlowConfig{Curves: 8, CurvePoints: 80}},
		"en":    {Labels: "en"},
	},
	"heart": {
		"en":   {Labels: "en"},
		"zh":   {Labels: "zh"},
		"slow": {Frames: 120},
	},
	"interactive": {
		"quick": {Frames: 40},
		"zh":    {Labels: "zh"},
	},
	"star": {
		"slow": {Frames: 240},
		"en":   {Labels: "en"},
	},
}

func GetPreset(chartName, preset string) *Config {
	chartPresets, ok := Presets[chartName]
	if !ok {
		return nil
	}
	cfg, ok := chartPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(chartName string) []string {
	chartPresets, ok := Presets[chartName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(chartPresets))
	for name := range chartPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
