package gel

import (
	"github.com/gelscope/gel/internal/profile"
)

// Normalization selects how NormalizeProfile rescales a profile.
type Normalization = profile.Normalization

// Profile normalization methods.
const (
	// NormalizeMinMax rescales onto [0, 1].
	NormalizeMinMax = profile.NormalizeMinMax

	// NormalizeZScore centers on the mean and divides by the standard
	// deviation.
	NormalizeZScore = profile.NormalizeZScore
)

// Profile defaults.
const (
	DefaultSmoothWindow         = profile.DefaultSmoothWindow
	DefaultBackgroundPercentile = profile.DefaultBackgroundPercentile
)

// Profile errors.
var (
	ErrLaneOutsideImage = profile.ErrLaneOutsideImage
	ErrInvalidLaneWidth = profile.ErrInvalidLaneWidth
)

// LaneProfile extracts the intensity profile of the lane centered at column
// x: the mean intensity of a width-column strip, one value per row, in the
// raster's native units. height <= 0 reads all rows.
func LaneProfile(r *Raster, x, width, height int) ([]float64, error) {
	return profile.Lane(r, x, width, height)
}

// SmoothProfile applies a centered moving average of the given window size.
func SmoothProfile(p []float64, window int) []float64 {
	return profile.Smooth(p, window)
}

// NormalizeProfile rescales a profile with the given method.
func NormalizeProfile(p []float64, method Normalization) []float64 {
	return profile.Normalize(p, method)
}

// ProfileBackground estimates the background level of a profile as the
// given percentile of its values.
func ProfileBackground(p []float64, percentile float64) float64 {
	return profile.Background(p, percentile)
}
