package geom

import "errors"

// ErrInvalidGeometry indicates a generated point with a NaN or Inf coordinate.
var ErrInvalidGeometry = errors.New("geom: invalid geometry (NaN or Inf detected)")
