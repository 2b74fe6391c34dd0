package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutFlagDefaults(t *testing.T) {
	root := newRootCmd()

	cases := []struct {
		command string
		want    string
	}{
		{"snapshot", ""},
		{"summary", defaultSummaryOut},
	}
	for _, tc := range cases {
		cmd, _, err := root.Find([]string{tc.command})
		if err != nil {
			t.Fatalf("%s: %v", tc.command, err)
		}
		flag := cmd.Flags().Lookup("out")
		if flag == nil {
			t.Fatalf("%s has no --out flag", tc.command)
		}
		if flag.DefValue != tc.want {
			t.Errorf("%s --out default: expected %q, got %q", tc.command, tc.want, flag.DefValue)
		}
	}

	if snapshotOut != "" {
		t.Errorf("snapshot output should start empty, got %q", snapshotOut)
	}
	if summaryOut != defaultSummaryOut {
		t.Errorf("summary output should be %q, got %q", defaultSummaryOut, summaryOut)
	}
}

func TestSnapshotDefaultPath(t *testing.T) {
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	t.Setenv("TYPHOONVIZ_LOG_LEVEL", "error")

	root := newRootCmd()
	root.SetArgs([]string{"snapshot", "flow", "--seed", "1", "--frame", "3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	data, err := os.ReadFile("flow_3.svg")
	if err != nil {
		t.Fatalf("expected flow_3.svg: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("snapshot is not SVG")
	}
	if _, err := os.Stat(defaultSummaryOut); !os.IsNotExist(err) {
		t.Errorf("snapshot must not write %s", defaultSummaryOut)
	}
}

func TestSnapshotExplicitOut(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frame.svg")

	root := newRootCmd()
	root.SetArgs([]string{"snapshot", "heart", "--seed", "1", "--out", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected %s: %v", out, err)
	}
}

func TestRenderTargets(t *testing.T) {
	names, err := renderTargets("all", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 4 {
		t.Errorf("expected 4 charts, got %v", names)
	}

	names, err = renderTargets("", "")
	if err != nil || len(names) != 4 {
		t.Errorf("empty target should mean all, got %v (%v)", names, err)
	}

	names, err = renderTargets("all", "dense")
	if err != nil {
		t.Fatalf("dense preset: %v", err)
	}
	if len(names) != 1 || names[0] != "flow" {
		t.Errorf("expected only flow for dense, got %v", names)
	}

	names, err = renderTargets("all", "en")
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range names {
		if n == "interactive" {
			t.Error("interactive has no en preset and should be skipped")
		}
	}

	if _, err := renderTargets("all", "nope"); err == nil {
		t.Error("expected error when no chart defines the preset")
	}

	names, err = renderTargets("heart", "dense")
	if err != nil || len(names) != 1 || names[0] != "heart" {
		t.Errorf("single chart target should pass through, got %v (%v)", names, err)
	}
}

func TestRenderUsesConfigChart(t *testing.T) {
	cmd := newTestCommand(t)
	path := filepath.Join(t.TempDir(), "typhoonviz.yaml")
	if err := os.WriteFile(path, []byte("chart: star\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile = path

	cfg, err := loadConfig(cmd, "")
	if err != nil {
		t.Fatal(err)
	}
	names, err := renderTargets(cfg.Chart, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "star" {
		t.Errorf("expected config chart star, got %v", names)
	}
}
