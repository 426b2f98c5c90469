package transform

import (
	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// Rotate90 rotates r by 90° counter-clockwise: the right edge becomes the
// top edge. The output is height×width; destination row y is source column
// width-1-y read top to bottom. Exact pixel permutation.
func Rotate90(r *raster.Raster) *raster.Raster {
	w, h := r.Bounds()
	out, _ := raster.New(h, w, r.Format())
	bpp := r.Format().BytesPerPixel()

	parallel.Rows(out.Height(), func(lo, hi int) {
		for dstY := lo; dstY < hi; dstY++ {
			outRow := out.Row(dstY)
			srcX := (w - 1 - dstY) * bpp
			for dstX := range h {
				copy(outRow[dstX*bpp:(dstX+1)*bpp], r.Row(dstX)[srcX:srcX+bpp])
			}
		}
	})

	return out
}

// Rotate180 rotates r by 180°: each destination row is the opposite source
// row reversed. Dimensions are unchanged. Exact pixel permutation.
func Rotate180(r *raster.Raster) *raster.Raster {
	w, h := r.Bounds()
	out, _ := raster.New(w, h, r.Format())
	bpp := r.Format().BytesPerPixel()

	parallel.Rows(h, func(lo, hi int) {
		for dstY := lo; dstY < hi; dstY++ {
			srcRow := r.Row(h - 1 - dstY)
			outRow := out.Row(dstY)
			for dstX := range w {
				srcX := (w - 1 - dstX) * bpp
				copy(outRow[dstX*bpp:(dstX+1)*bpp], srcRow[srcX:srcX+bpp])
			}
		}
	})

	return out
}

// Rotate270 rotates r by 270° counter-clockwise (90° clockwise): the left
// edge becomes the top edge. The output is height×width; destination row y
// is source column y read bottom to top. Exact pixel permutation.
func Rotate270(r *raster.Raster) *raster.Raster {
	w, h := r.Bounds()
	out, _ := raster.New(h, w, r.Format())
	bpp := r.Format().BytesPerPixel()

	parallel.Rows(out.Height(), func(lo, hi int) {
		for dstY := lo; dstY < hi; dstY++ {
			outRow := out.Row(dstY)
			srcX := dstY * bpp
			for dstX := range h {
				copy(outRow[dstX*bpp:(dstX+1)*bpp], r.Row(h-1-dstX)[srcX:srcX+bpp])
			}
		}
	})

	return out
}
