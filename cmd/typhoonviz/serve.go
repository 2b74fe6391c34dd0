package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/typhoonviz/internal/chart"
	"github.com/san-kum/typhoonviz/internal/observability"
	"github.com/san-kum/typhoonviz/internal/render"
	"github.com/san-kum/typhoonviz/internal/server"
	"github.com/san-kum/typhoonviz/internal/viz"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	name := args[0]
	c, cfg, _, err := buildChart(cmd, name)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	metrics := observability.NewMetrics()

	animator := chart.NewAnimator()
	animator.AddObserver(metrics)
	fig, stats, err := animator.Run(cmd.Context(), c)
	if err != nil {
		metrics.ObserveRender(name, observability.OutcomeError, stats.Elapsed)
		return err
	}
	metrics.ObserveRender(name, observability.OutcomeSuccess, stats.Elapsed)

	var page bytes.Buffer
	if err := render.WriteHTML(&page, fig, c.Labels().Name); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	srv := server.New(cfg.Addr, name, page.Bytes(), metrics, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("serving chart", "chart", name, "addr", cfg.Addr, "frames", stats.Frames)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	c, _, _, err := buildChart(cmd, args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPreview(c, loop), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
