package intensity

import "math"

// Table is a dense lookup table mapping every 8-bit source value to its
// display value.
//
// A Table is a pure function of the window and adjustment it was built from.
// It is built fresh for each apply call and never cached or shared: the
// parameters change with every slider interaction, and building 256 entries
// is cheaper than any invalidation scheme.
type Table [256]uint8

// BuildTable materializes the transform pipeline for 8-bit sources.
//
// Precondition: w.Min < w.Max. Substituting the full native range for an
// invalid window is the applier's responsibility, not the builder's.
func BuildTable(w Window, a Adjust) *Table {
	var t Table
	for i := range t {
		t[i] = evalPipeline(float64(i), w, a)
	}
	return &t
}

// evalPipeline maps one native-unit sample to its display value.
//
// The four steps run in fixed order (window, contrast, brightness, final
// clamp), entirely in float64. The result is truncated toward zero, not
// rounded; golden outputs depend on it.
func evalPipeline(v float64, w Window, a Adjust) uint8 {
	// 1. Window: clamp into [Min, Max], then remap onto [0, 255].
	if v < w.Min {
		v = w.Min
	} else if v > w.Max {
		v = w.Max
	}
	v = (v - w.Min) * 255 / (w.Max - w.Min)

	// 2. Contrast pivots about the display midpoint.
	if math.Abs(a.Contrast-1) > IdentityTolerance {
		v = (v-128)*a.Contrast + 128
	}

	// 3. Brightness scales.
	if math.Abs(a.Brightness-1) > IdentityTolerance {
		v *= a.Brightness
	}

	// 4. Clamp and truncate.
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
