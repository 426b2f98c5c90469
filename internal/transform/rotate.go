package transform

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gelscope/gel/internal/raster"
)

// Rotate returns r rotated by angle degrees about its center. Positive
// angles rotate counter-clockwise on screen; any finite angle is accepted
// and normalized into [0, 360) first.
//
// With expand true the canvas grows to hold the whole rotated image and the
// regions exposed by the rotation are painted with fill (nil fill means
// black; grayscale formats store the fill's luminance). With expand false
// the canvas keeps the source dimensions and the corners rotate out of view.
//
// Quarter turns with expansion take the exact permutation path. Everything
// else resamples with a Catmull-Rom kernel whose writes saturate at the
// format's native range, so rotation never manufactures values outside it.
// The output format always matches the source format.
func Rotate(r *raster.Raster, angle float64, expand bool, fill color.Color) *raster.Raster {
	angle = normalizeAngle(angle)
	if angle == 0 {
		return r.Clone()
	}
	if expand {
		switch angle {
		case 90:
			return Rotate90(r)
		case 180:
			return Rotate180(r)
		case 270:
			return Rotate270(r)
		}
	}

	srcW, srcH := r.Bounds()
	dstW, dstH := srcW, srcH
	if expand {
		dstW, dstH = rotatedSize(srcW, srcH, angle)
	}

	src := r.ToImage()
	dst := newFilledImage(r.Format(), dstW, dstH, fill)

	sin, cos := math.Sincos(angle * math.Pi / 180)
	// Forward source-to-destination map about the two canvas centers.
	// With y growing down, [cos, sin; -sin, cos] turns the image
	// counter-clockwise as seen on screen.
	m := f64.Aff3{
		cos, sin, float64(dstW)/2 - cos*float64(srcW)/2 - sin*float64(srcH)/2,
		-sin, cos, float64(dstH)/2 + sin*float64(srcW)/2 - cos*float64(srcH)/2,
	}
	draw.CatmullRom.Transform(dst, m, src, src.Bounds(), draw.Src, nil)

	out, _ := raster.FromImage(dst)
	return out
}

// normalizeAngle maps any finite angle onto [0, 360).
func normalizeAngle(angle float64) float64 {
	return angle - math.Floor(angle/360)*360
}

// rotatedSize returns the canvas that holds a w×h image rotated by angle
// degrees. Corners are taken at pixel centers, with a small tolerance before
// growing the canvas by another pixel.
func rotatedSize(w, h int, angle float64) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}

	sin, cos := math.Sincos(angle * math.Pi / 180)
	x1, y1 := rotatePoint(float64(w-1), 0, sin, cos)
	x2, y2 := rotatePoint(float64(w-1), float64(h-1), sin, cos)
	x3, y3 := rotatePoint(0, float64(h-1), sin, cos)

	minx := math.Min(x1, math.Min(x2, math.Min(x3, 0)))
	maxx := math.Max(x1, math.Max(x2, math.Max(x3, 0)))
	miny := math.Min(y1, math.Min(y2, math.Min(y3, 0)))
	maxy := math.Max(y1, math.Max(y2, math.Max(y3, 0)))

	neww := maxx - minx + 1
	if neww-math.Floor(neww) > 0.1 {
		neww++
	}
	newh := maxy - miny + 1
	if newh-math.Floor(newh) > 0.1 {
		newh++
	}
	return int(neww), int(newh)
}

// rotatePoint rotates (x, y) about the origin by the angle whose sine and
// cosine are given.
func rotatePoint(x, y, sin, cos float64) (float64, float64) {
	return x*cos - y*sin, x*sin + y*cos
}

// newFilledImage allocates the destination image for a resampled rotation,
// matching the raster format's std image kind and pre-painted with fill.
// A nil fill leaves the zero value, which is black at every depth.
func newFilledImage(f raster.Format, w, h int, fill color.Color) draw.Image {
	rect := image.Rect(0, 0, w, h)

	var dst draw.Image
	switch f {
	case raster.FormatGray8:
		dst = image.NewGray(rect)
	case raster.FormatGray16:
		dst = image.NewGray16(rect)
	default:
		dst = image.NewNRGBA(rect)
	}

	if fill != nil {
		draw.Draw(dst, rect, image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return dst
}
