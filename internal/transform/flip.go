// Package transform implements the geometric operations of the gel pipeline:
// axis flips, quarter-turn rotations, and arbitrary-angle rotation with
// canvas expansion.
//
// Flips and quarter turns are exact pixel permutations: no resampling, no
// fill. Arbitrary angles resample with a Catmull-Rom kernel and paint the
// regions exposed by the rotation with a fill color.
package transform

import (
	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// FlipH mirrors r horizontally (left-right). Dimensions are unchanged.
func FlipH(r *raster.Raster) *raster.Raster {
	out, _ := raster.New(r.Width(), r.Height(), r.Format())
	w := r.Width()
	bpp := r.Format().BytesPerPixel()

	parallel.Rows(r.Height(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := r.Row(y)
			outRow := out.Row(y)
			for x := range w {
				copy(outRow[(w-1-x)*bpp:(w-x)*bpp], srcRow[x*bpp:x*bpp+bpp])
			}
		}
	})

	return out
}

// FlipV mirrors r vertically (top-bottom). Dimensions are unchanged.
func FlipV(r *raster.Raster) *raster.Raster {
	out, _ := raster.New(r.Width(), r.Height(), r.Format())
	h := r.Height()

	parallel.Rows(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			copy(out.Row(y), r.Row(h-1-y))
		}
	})

	return out
}
