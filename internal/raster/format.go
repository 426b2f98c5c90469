// Package raster provides the pixel buffers the gel intensity pipeline
// operates on.
//
// A decoded gel image is one of three layouts: single-channel 8-bit,
// three-channel 8-bit, or single-channel 16-bit. Every transform consumes a
// Raster read-only and returns a freshly allocated one; buffers are never
// mutated in place once handed off.
package raster

// Format identifies a supported pixel storage layout.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, little-endian).
	// This is the native layout of high-bit-depth gel scanner output.
	FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// BitsPerSample is the number of bits per channel sample.
	BitsPerSample int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		BitsPerSample: 8,
	},
	FormatGray16: {
		BytesPerPixel: 2,
		Channels:      1,
		BitsPerSample: 16,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		BitsPerSample: 8,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// BitsPerSample returns the number of bits per channel sample.
func (f Format) BitsPerSample() int {
	return f.Info().BitsPerSample
}

// BytesPerSample returns the number of bytes per channel sample.
func (f Format) BytesPerSample() int {
	return f.Info().BitsPerSample / 8
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// Depth is the bit-depth class of a format: how wide its native samples are
// and the largest value a sample can hold.
//
// Only single-channel 16-bit storage classifies as 16-bit. Every 8-bit
// layout, grayscale or RGB, classifies as {8, 255}.
type Depth struct {
	// Bits is the native sample width: 8 or 16.
	Bits int

	// Max is the largest representable sample value: 255 or 65535.
	Max float64
}

// Depth returns the bit-depth class of this format.
// It is derived purely from the format table, never from pixel inspection.
func (f Format) Depth() Depth {
	bits := f.Info().BitsPerSample
	if bits == 0 {
		return Depth{}
	}
	return Depth{
		Bits: bits,
		Max:  float64(uint32(1)<<bits - 1),
	}
}

// Classify reports the bit-depth class of a raster.
//
// Downstream code (histogram bucketing, LUT construction) branches on the
// returned Depth instead of re-deriving bit width from the pixel format at
// each call site.
func Classify(r *Raster) Depth {
	return r.Format().Depth()
}
