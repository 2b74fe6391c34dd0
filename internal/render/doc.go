// Package render exports assembled figures.
//
// WriteHTML produces a self-contained page with the figure JSON and a small
// canvas player (play/pause, hover text, year filter). Snapshot draws one
// frame as SVG and Summary draws the yearly counts as a PNG bar chart.
package render
