package gel

import (
	"log/slog"

	"github.com/gelscope/gel/internal/hist"
	"github.com/gelscope/gel/internal/raster"
)

// Histogram is a 256-bucket intensity histogram with per-bucket anchor
// values in the source's native units.
type Histogram = hist.Histogram

// HistogramBuckets is the number of buckets in every histogram, at either
// bit depth.
const HistogramBuckets = hist.Buckets

// Default cumulative-count fractions for auto-leveling.
const (
	DefaultLowFraction  = hist.DefaultLowFraction
	DefaultHighFraction = hist.DefaultHighFraction
)

// ComputeHistogram pools every sample of every channel into 256 buckets.
// 8-bit sources bucket by value with anchors at the bucket's value; 16-bit
// sources bucket by the high byte with anchors at each bucket's midpoint.
// The counts always sum to width*height*channels.
func ComputeHistogram(r *Raster) *Histogram {
	return hist.Compute(r)
}

// AutoWindow returns the bucket indices where the cumulative count first
// reaches lowFrac and highFrac of the total. See the Histogram docs for how
// indices map to native values.
func AutoWindow(h *Histogram, lowFrac, highFrac float64) (lo, hi int) {
	return hist.AutoWindow(h, lowFrac, highFrac)
}

// AutoLevel derives a display window from a raster's histogram: the window
// spans the buckets holding the middle 98% of the cumulative counts
// (fractions DefaultLowFraction and DefaultHighFraction), converted to the
// raster's native units. Images too uniform to produce a usable window get
// the full native range.
func AutoLevel(r *Raster) Window {
	h := hist.Compute(r)
	lo, hi := hist.AutoWindow(h, hist.DefaultLowFraction, hist.DefaultHighFraction)
	depth := raster.Classify(r)
	if lo >= hi {
		return FullRange(depth)
	}

	scale := hist.BucketWidth(depth)
	w := Window{Min: float64(lo) * scale, Max: float64(hi) * scale}
	Logger().Debug("auto level",
		slog.Int("low_bucket", lo),
		slog.Int("high_bucket", hi),
		slog.Float64("min", w.Min),
		slog.Float64("max", w.Max),
	)
	return w
}
