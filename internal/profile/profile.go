// Package profile extracts and conditions per-lane intensity traces from gel
// rasters. A lane profile is the mean intensity of a vertical strip of the
// image, one value per row, in the raster's native units (0-255 or 0-65535).
package profile

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// Profile errors.
var (
	// ErrLaneOutsideImage is returned when the requested lane strip does not
	// overlap the image at all.
	ErrLaneOutsideImage = errors.New("profile: lane outside image")

	// ErrInvalidLaneWidth is returned when the lane width is not positive.
	ErrInvalidLaneWidth = errors.New("profile: invalid lane width")
)

const (
	// DefaultSmoothWindow is the moving-average window used when callers do
	// not pick one.
	DefaultSmoothWindow = 5

	// DefaultBackgroundPercentile is the percentile used to estimate the
	// background level of a profile.
	DefaultBackgroundPercentile = 10.0
)

// Normalization selects how Normalize rescales a profile.
type Normalization uint8

const (
	// NormalizeMinMax rescales the profile onto [0, 1].
	NormalizeMinMax Normalization = iota

	// NormalizeZScore centers the profile on its mean and divides by its
	// standard deviation.
	NormalizeZScore
)

// String returns the name of the normalization method.
func (n Normalization) String() string {
	switch n {
	case NormalizeMinMax:
		return "minmax"
	case NormalizeZScore:
		return "zscore"
	default:
		return "unknown"
	}
}

// Lane extracts the intensity profile of the lane centered at column x.
// The strip spans width columns, clipped to the image; height limits how
// many rows are read from the top, with height <= 0 meaning all rows.
//
// Each element is the mean of every sample in that row of the strip, so for
// RGB rasters the three channels pool into one value. Values stay in the
// raster's native range.
func Lane(r *raster.Raster, x, width, height int) ([]float64, error) {
	if width <= 0 {
		return nil, ErrInvalidLaneWidth
	}

	imgW, imgH := r.Bounds()
	x0 := x - width/2
	x1 := x0 + width
	if x0 < 0 {
		x0 = 0
	}
	if x1 > imgW {
		x1 = imgW
	}
	if x0 >= x1 {
		return nil, ErrLaneOutsideImage
	}

	if height <= 0 || height > imgH {
		height = imgH
	}

	channels := r.Format().Channels()
	samples := float64((x1 - x0) * channels)
	out := make([]float64, height)

	parallel.Rows(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			var sum float64
			for sx := x0; sx < x1; sx++ {
				for c := range channels {
					sum += float64(r.Sample(sx, y, c))
				}
			}
			out[y] = sum / samples
		}
	})
	return out, nil
}

// Smooth applies a centered moving average of the given window size and
// returns the smoothed profile. The window shrinks near the ends so every
// output value averages only real samples. A window below 2 returns a copy.
func Smooth(p []float64, window int) []float64 {
	out := make([]float64, len(p))
	if window < 2 {
		copy(out, p)
		return out
	}

	radius := window / 2
	for i := range p {
		lo := max(i-radius, 0)
		hi := min(i+radius+1, len(p))
		var sum float64
		for j := lo; j < hi; j++ {
			sum += p[j]
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// Normalize rescales a profile with the given method and returns the result.
// A flat profile normalizes to all zeros under either method.
func Normalize(p []float64, method Normalization) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}

	switch method {
	case NormalizeZScore:
		mean := stat.Mean(p, nil)
		std := stat.StdDev(p, nil)
		if std == 0 || math.IsNaN(std) {
			return out
		}
		for i, v := range p {
			out[i] = (v - mean) / std
		}

	default:
		lo, hi := floats.Min(p), floats.Max(p)
		if hi == lo {
			return out
		}
		for i, v := range p {
			out[i] = (v - lo) / (hi - lo)
		}
	}
	return out
}

// Background estimates the background level of a profile as the given
// percentile of its values, interpolating between samples the way plotting
// packages do. Percentiles outside [0, 100] are clamped. An empty profile
// has background 0.
func Background(p []float64, percentile float64) float64 {
	if len(p) == 0 {
		return 0
	}
	if percentile < 0 {
		percentile = 0
	} else if percentile > 100 {
		percentile = 100
	}

	sorted := slices.Clone(p)
	slices.Sort(sorted)
	return stat.Quantile(percentile/100, stat.LinInterp, sorted, nil)
}
