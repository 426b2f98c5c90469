// Package intensity implements the display transform for gel rasters:
// windowing, contrast, and brightness composed into a single per-sample
// mapping onto the 8-bit display range.
//
// For 8-bit sources the mapping is materialized as a dense 256-entry lookup
// table; for 16-bit sources it is evaluated per sample in floating point,
// since the domain is too large to tabulate. Either way the pipeline and its
// numeric quirks (evaluation order, identity tolerance, truncation) are
// identical.
package intensity

import "github.com/gelscope/gel/internal/raster"

// IdentityTolerance is the half-width of the band around 1.0 inside which a
// brightness or contrast factor is treated as exact identity and skipped.
// Skipping changes rounding at the margins, so the tolerance is part of the
// numeric behavior callers see, not an optimization detail.
const IdentityTolerance = 0.01

// Window selects the sub-range of source intensities that is stretched onto
// the full 0-255 display range; samples outside it clip to the ends.
// Values are native source units: 0-255 for 8-bit sources, 0-65535 for
// 16-bit.
type Window struct {
	Min float64
	Max float64
}

// Valid reports whether the window selects a non-empty range.
func (w Window) Valid() bool {
	return w.Min < w.Max
}

// FullRange returns the identity window for the given depth: no clipping,
// plain linear scaling onto the display range.
func FullRange(d raster.Depth) Window {
	return Window{Min: 0, Max: d.Max}
}

// Adjust holds the brightness and contrast factors. 1.0 is identity for
// both; factors within IdentityTolerance of 1.0 are skipped entirely.
// Values in (0, 2] are conventional but not enforced.
type Adjust struct {
	Brightness float64
	Contrast   float64
}

// Neutral is the identity adjustment.
var Neutral = Adjust{Brightness: 1, Contrast: 1}
