package timing

import "math"

// Stagger holds the per-item start delay and the ramp length, both in frames.
type Stagger struct {
	Delay    float64
	Duration float64
}

// Progress is AppearanceProgress with the stagger's constants.
func (s Stagger) Progress(frame, item int) float64 {
	return AppearanceProgress(frame, item, s.Delay, s.Duration)
}

// Start is the first frame at which item begins to appear.
func (s Stagger) Start(item int) float64 {
	return float64(item) * s.Delay
}

// FullyVisible reports the first frame at which item has progress 1.
func (s Stagger) FullyVisible(item int) int {
	return int(math.Ceil(s.Start(item) + math.Max(s.Duration, 0)))
}

// AppearanceProgress returns clamp((frame - item*delay)/duration, 0, 1).
// A non-positive duration makes the ramp a step at the start frame.
func AppearanceProgress(frame, item int, delay, duration float64) float64 {
	elapsed := float64(frame) - float64(item)*delay
	if duration <= 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	return Clamp(elapsed/duration, 0, 1)
}

// Oscillation returns sin(frame/period + phase). A zero period is treated as 1.
func Oscillation(frame, period, phase float64) float64 {
	if period == 0 {
		period = 1
	}
	return math.Sin(frame/period + phase)
}

// Wave is the phase used by the flow and star charts: frame/framePeriod + item/itemPeriod.
type Wave struct {
	FramePeriod float64
	ItemPeriod  float64
}

func (w Wave) Phase(frame, item int) float64 {
	return float64(frame)/nonZero(w.FramePeriod) + float64(item)/nonZero(w.ItemPeriod)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
