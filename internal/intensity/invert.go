package intensity

import (
	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// Invert returns the photographic negative of r: every sample v becomes
// Max-v in native units. Unlike Apply, inversion preserves the source
// format (a 16-bit raster stays 16-bit), and inverting twice restores the
// original exactly.
func Invert(r *raster.Raster) *raster.Raster {
	out, _ := raster.New(r.Width(), r.Height(), r.Format())

	parallel.Rows(r.Height(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := r.Row(y)
			outRow := out.Row(y)
			// Max-v is the bitwise complement at both depths
			// (255-v == ^v, 65535-v == ^v), and complementing the
			// little-endian bytes of a 16-bit sample complements
			// the sample, so one byte loop covers every format.
			for i, b := range srcRow {
				outRow[i] = ^b
			}
		}
	})

	return out
}
