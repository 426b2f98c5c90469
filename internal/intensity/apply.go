package intensity

import (
	"encoding/binary"

	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// Apply runs the window/adjust transform over every sample of r and returns
// the result as a new raster; r is never modified.
//
// An invalid window (Min >= Max) is silently replaced with the full native
// range. Interactive callers cross the min/max sliders routinely; that means
// "no windowing", not an error, so nothing is reported.
//
// Output layout: Gray8 in, Gray8 out; RGB8 in, RGB8 out (the same table
// applied to each channel independently); Gray16 in, Gray8 out, since 16-bit
// sources are always downconverted to the 8-bit display range, deliberately
// and lossily.
func Apply(r *raster.Raster, w Window, a Adjust) *raster.Raster {
	depth := raster.Classify(r)
	if !w.Valid() {
		w = FullRange(depth)
	}

	if depth.Bits == 16 {
		return apply16(r, w, a)
	}
	return apply8(r, BuildTable(w, a))
}

// apply8 looks every sample byte up through the dense table. Gray8 and RGB8
// share this path: each channel byte indexes the table on its own.
func apply8(src *raster.Raster, t *Table) *raster.Raster {
	out, _ := raster.New(src.Width(), src.Height(), src.Format())

	parallel.Rows(src.Height(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := src.Row(y)
			outRow := out.Row(y)
			for i, v := range srcRow {
				outRow[i] = t[v]
			}
		}
	})

	return out
}

// apply16 evaluates the float pipeline per sample and emits Gray8.
func apply16(src *raster.Raster, w Window, a Adjust) *raster.Raster {
	out, _ := raster.New(src.Width(), src.Height(), raster.FormatGray8)

	parallel.Rows(src.Height(), func(lo, hi int) {
		for y := lo; y < hi; y++ {
			srcRow := src.Row(y)
			outRow := out.Row(y)
			for x := range out.Width() {
				v := binary.LittleEndian.Uint16(srcRow[x*2:])
				outRow[x] = evalPipeline(float64(v), w, a)
			}
		}
	})

	return out
}
