package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/config"
)

var (
	dataDir     string
	seed        int64
	frames      int
	outDir      string
	labels      string
	openFile    bool
	configFile  string
	preset      string
	// snapshot
	frameIndex  int
	snapshotOut string
	// summary
	summaryOut  string
	// serve
	addr        string
	// preview
	loop        bool
	// show
	asJSON      bool
)

var registry = chart.NewRegistry()

const defaultSummaryOut = "typhoon_counts.png"

// main executes the root command and exits with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and its flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "typhoonviz",
		Short:        "animated Hong Kong typhoon data charts",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "render history directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", 0, "number of frames (0 keeps the chart default)")
	rootCmd.PersistentFlags().StringVar(&labels, "labels", "", fmt.Sprintf("label set %v (empty keeps the chart default)", chart.LabelNames()))

	renderCmd := &cobra.Command{
		Use:   "render [chart|all]",
		Long:  "render charts to standalone HTML. Without an argument the config file's chart is used (default all).",
		Short: "render charts to standalone HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outDir, "out-dir", config.DefaultOutDir, "output directory")
	renderCmd.Flags().BoolVar(&openFile, "open", true, "open rendered files in the browser")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [chart]",
		Short: "write one frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frameIndex, "frame", 0, "frame index")
	snapshotCmd.Flags().StringVar(&snapshotOut, "out", "", "output file (default <chart>_<frame>.svg)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "write a bar chart of typhoon counts per year as PNG",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}
	summaryCmd.Flags().StringVar(&summaryOut, "out", defaultSummaryOut, "output file")

	plotCmd := &cobra.Command{
		Use:   "plot [chart]",
		Short: "plot counts and appearance progress in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [chart]",
		Short: "play a chart in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().BoolVar(&loop, "loop", true, "restart after the last frame")

	serveCmd := &cobra.Command{
		Use:   "serve [chart]",
		Short: "serve a rendered chart with health and metrics endpoints",
		Args:  cobra.ExactArgs(1),
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list renders",
		Args:  cobra.NoArgs,
		RunE:  listRenders,
	}

	showCmd := &cobra.Command{
		Use:   "show [render_id]",
		Short: "show a render and its per-frame statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  showRender,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets [chart]",
		Short: "list available presets for a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for chart: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	chartsCmd := &cobra.Command{
		Use:   "charts",
		Short: "list available charts",
		Args:  cobra.NoArgs,
		RunE:  listCharts,
	}

	rootCmd.AddCommand(renderCmd, snapshotCmd, summaryCmd, plotCmd, previewCmd, serveCmd, listCmd, showCmd, presetsCmd, chartsCmd)

	return rootCmd
}
