package chart

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Observer is notified after each frame is generated.
type Observer interface {
	OnFrame(chart string, index int, f Frame)
}

// Resetter is implemented by observers that keep per-run state.
type Resetter interface {
	Reset(chart string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(chart string, index int, f Frame)

func (fn ObserverFunc) OnFrame(chart string, index int, f Frame) { fn(chart, index, f) }

// RunStats summarises one animation build.
type RunStats struct {
	Chart   string
	Frames  int
	Traces  int
	Points  int
	Elapsed time.Duration
}

// Animator generates every frame of a chart and assembles the figure.
type Animator struct {
	clock     clockwork.Clock
	observers []Observer
	validate  bool
}

func NewAnimator() *Animator {
	return &Animator{clock: clockwork.NewRealClock(), validate: true}
}

// WithClock swaps the clock used for RunStats.Elapsed.
func (a *Animator) WithClock(c clockwork.Clock) *Animator {
	a.clock = c
	return a
}

// SetValidate toggles the NaN/Inf check on each generated frame.
func (a *Animator) SetValidate(v bool) { a.validate = v }

func (a *Animator) AddObserver(o Observer) { a.observers = append(a.observers, o) }

// Run generates frames 0..Frames()-1 in order. Generation stops at the first
// cancelled context or invalid frame; the partial stats are still returned.
func (a *Animator) Run(ctx context.Context, c Chart) (*Figure, RunStats, error) {
	stats := RunStats{Chart: c.Name()}
	start := a.clock.Now()

	n := c.Frames()
	if n <= 0 {
		return nil, stats, &FrameError{Chart: c.Name(), Frame: n, Wrapped: ErrFrameRange}
	}

	for _, obs := range a.observers {
		if r, ok := obs.(Resetter); ok {
			r.Reset(c.Name())
		}
	}

	// Initial draws from the generator before frame 0.
	var initial *Frame
	if init, ok := c.(Initializer); ok && c.Assembly() == AssembleStatic {
		fr := init.Initial()
		initial = &fr
	}

	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			stats.Elapsed = a.clock.Since(start)
			return nil, stats, ctx.Err()
		default:
		}

		fr := c.Frame(i)
		if a.validate {
			if err := fr.Validate(); err != nil {
				stats.Elapsed = a.clock.Since(start)
				return nil, stats, &FrameError{Chart: c.Name(), Frame: i, Wrapped: err}
			}
		}

		stats.Frames++
		stats.Traces += len(fr.Traces)
		stats.Points += fr.NumPoints()
		for _, obs := range a.observers {
			obs.OnFrame(c.Name(), i, fr)
		}
		frames = append(frames, fr)
	}

	fig := Assemble(c, initial, frames)
	stats.Elapsed = a.clock.Since(start)
	return fig, stats, nil
}

// Assemble builds the figure from already generated frames according to the
// chart's Assembly mode. A nil initial falls back to frame 0.
func Assemble(c Chart, initial *Frame, frames []Frame) *Figure {
	fig := &Figure{Chart: c.Name(), Layout: c.Layout()}
	if len(frames) == 0 {
		return fig
	}

	switch c.Assembly() {
	case AssembleDropFirst:
		fig.Data = frames[0]
		fig.Frames = frames[1:]
	case AssembleStatic:
		if initial != nil {
			fig.Data = *initial
		} else {
			fig.Data = frames[0]
		}
		fig.Frames = frames
	default:
		fig.Data = frames[0]
		fig.Frames = frames
	}
	return fig
}
