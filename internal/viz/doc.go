// Package viz previews charts in the terminal.
//
// [Preview] is a Bubble Tea model that plays a chart's frames on a
// Braille [Canvas]: lines are rasterised with Bresenham, markers become
// small dots, and the status line shows the mean appearance progress.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	[ ]   - Step back/forward one frame
//	R     - Restart from frame 0
//	T     - Cycle color themes
//	?     - Show help
//	Q     - Quit
package viz
