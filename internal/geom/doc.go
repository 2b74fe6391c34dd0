// Package geom generates the procedural geometry behind every chart.
//
// All generators take an explicit *rand.Rand so a fixed seed reproduces
// a frame exactly:
//
//   - [GenerateFlowCurves]: noise-perturbed smoke lines rising from an anchor
//   - [HeartRadius], [HeartOutline]: closed polar heart curve
//   - [HeartStars]: points scattered inside the heart
//   - [Cluster]: Gaussian core plus an annular dust ring
//   - [StarField]: uniform background stars
//
// Generated points are plain float64 pairs; [Points.IsValid] reports
// NaN or Inf coordinates.
package geom
