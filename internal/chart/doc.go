// Package chart assembles animated figures from the procedural geometry.
//
// A [Chart] produces one [Frame] per index; the [Animator] loops over all
// frames, notifies observers, and assembles a [Figure] (layout, initial
// traces, and the named animation frames) ready for export.
//
// Four charts are registered by default:
//
//	flow         smoke lines rising from each year's anchor
//	heart        rotating heart layers scaled by count
//	interactive  flow lines with detail hover, year filter, play/pause
//	star         drifting star clusters sized by count
//
// Charts hold an explicit *rand.Rand; two charts built from the same seed
// produce identical figures.
package chart
