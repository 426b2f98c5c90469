package gel

import (
	"github.com/gelscope/gel/internal/intensity"
)

// Window clamps and linearly remaps source intensities onto the display
// range. Min and Max are in the source's native units (0-255 for 8-bit
// sources, 0-65535 for 16-bit). A window with Min >= Max is treated as
// "no windowing": the applier substitutes the full native range.
type Window = intensity.Window

// Adjust holds the brightness and contrast factors of the intensity
// transform. 1.0 is the identity for both; factors within
// IdentityTolerance of 1.0 are skipped.
type Adjust = intensity.Adjust

// Neutral is the identity adjustment.
var Neutral = intensity.Neutral

// IdentityTolerance is how far a brightness or contrast factor may sit from
// 1.0 and still count as identity.
const IdentityTolerance = intensity.IdentityTolerance

// FullRange returns the window spanning a depth's whole native range.
func FullRange(d Depth) Window {
	return intensity.FullRange(d)
}

// ApplyIntensity runs the window + contrast + brightness transform over a
// raster and returns the result; the input is never mutated. 8-bit sources
// keep their format; 16-bit sources come out as 8-bit grayscale.
func ApplyIntensity(r *Raster, w Window, a Adjust) *Raster {
	return intensity.Apply(r, w, a)
}

// Invert flips every sample within its native range (255-v or 65535-v).
// The format is preserved, and Invert is its own inverse.
func Invert(r *Raster) *Raster {
	return intensity.Invert(r)
}
