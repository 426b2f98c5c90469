package gel

import (
	"image/color"

	"github.com/gelscope/gel/internal/transform"
)

// RotateOption configures a rotation.
//
// Example:
//
//	// Default: expand the canvas, fill exposed corners with black.
//	out := gel.Rotate(img, 12.5)
//
//	// Keep the source canvas and clip the corners.
//	out := gel.Rotate(img, 12.5, gel.WithExpand(false))
type RotateOption func(*rotateOptions)

// rotateOptions holds optional configuration for Rotate.
type rotateOptions struct {
	expand bool
	fill   color.Color
}

// defaultRotateOptions returns the default rotation options.
func defaultRotateOptions() rotateOptions {
	return rotateOptions{
		expand: true,
		fill:   nil, // nil fill paints black
	}
}

// WithExpand controls whether the canvas grows to hold the whole rotated
// image (true, the default) or keeps the source dimensions and clips the
// corners (false).
func WithExpand(expand bool) RotateOption {
	return func(o *rotateOptions) {
		o.expand = expand
	}
}

// WithFill sets the color painted into the regions a rotation exposes.
// Grayscale rasters store the fill's luminance. The default is black.
func WithFill(c color.Color) RotateOption {
	return func(o *rotateOptions) {
		o.fill = c
	}
}

// Rotate returns the raster rotated by angle degrees about its center.
// Positive angles rotate counter-clockwise on screen; angles are normalized
// into [0, 360), so -90 and 270 are the same turn. Multiples of 90 degrees
// with expansion are exact pixel permutations; other angles resample with a
// bicubic kernel that never produces values outside the source's native
// range. The output format matches the source format.
func Rotate(r *Raster, angle float64, opts ...RotateOption) *Raster {
	o := defaultRotateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return transform.Rotate(r, angle, o.expand, o.fill)
}

// Rotate90 returns the raster turned a quarter turn counter-clockwise.
// Width and height swap; every pixel is preserved exactly.
func Rotate90(r *Raster) *Raster { return transform.Rotate90(r) }

// Rotate180 returns the raster turned a half turn.
func Rotate180(r *Raster) *Raster { return transform.Rotate180(r) }

// Rotate270 returns the raster turned a quarter turn clockwise.
// Width and height swap; every pixel is preserved exactly.
func Rotate270(r *Raster) *Raster { return transform.Rotate270(r) }

// FlipAxis selects the mirror axis of a flip.
type FlipAxis uint8

// Flip axes.
const (
	// FlipHorizontal mirrors left-right (around the vertical axis).
	FlipHorizontal FlipAxis = iota

	// FlipVertical mirrors top-bottom (around the horizontal axis).
	FlipVertical
)

// String returns the name of the flip axis.
func (a FlipAxis) String() string {
	switch a {
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Flip returns the raster mirrored around the given axis. Dimensions are
// unchanged; every pixel is preserved exactly.
func Flip(r *Raster, axis FlipAxis) *Raster {
	if axis == FlipVertical {
		return transform.FlipV(r)
	}
	return transform.FlipH(r)
}
