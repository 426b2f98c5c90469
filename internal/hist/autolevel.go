package hist

// Default cumulative fractions for auto-leveling: the window is stretched
// between the darkest 1% and the brightest 1% of samples.
const (
	DefaultLowFraction  = 0.01
	DefaultHighFraction = 0.99
)

// AutoWindow derives window bucket indices from a histogram: lo is the
// smallest bucket index at which the cumulative count first reaches
// lowFrac of the total, hi the smallest index at which it first reaches
// highFrac.
//
// The comparison is >= on each side, so a bucket that lands exactly on a
// threshold is included. An empty histogram yields the full index range.
func AutoWindow(h *Histogram, lowFrac, highFrac float64) (lo, hi int) {
	total := h.Total()
	if total == 0 {
		return 0, Buckets - 1
	}

	lowThresh := lowFrac * float64(total)
	highThresh := highFrac * float64(total)

	lo, hi = -1, -1
	var cum uint64
	for i, c := range h.Counts {
		cum += c
		fc := float64(cum)
		if lo < 0 && fc >= lowThresh {
			lo = i
		}
		if hi < 0 && fc >= highThresh {
			hi = i
		}
	}
	if lo < 0 {
		lo = 0
	}
	if hi < 0 {
		hi = Buckets - 1
	}
	return lo, hi
}
