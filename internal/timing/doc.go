// Package timing maps a frame index and an item index to animation state.
//
// Items appear staggered: item i starts ramping in at frame i*Delay and is
// fully visible Duration frames later ([Stagger.Progress]). Continuous motion
// comes from [Oscillation], a sine of frame/period plus a per-item phase.
package timing
