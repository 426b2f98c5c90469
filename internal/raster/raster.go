package raster

import (
	"encoding/binary"
	"errors"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("raster: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("raster: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("raster: data buffer too small")

	// ErrOutOfBounds is returned when sample coordinates are outside raster bounds.
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")
)

// Raster is a decoded gel image: a contiguous row-major sample buffer plus
// the metadata needed to address it.
//
// Thread safety: a Raster is safe for concurrent read access. The transform
// pipeline never writes to a raster after construction (every operation
// returns a new Raster), so reads across worker goroutines need no locking.
type Raster struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// New creates a zero-filled raster with the given dimensions and format.
// Returns an error if dimensions are invalid or the format is unknown.
func New(width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	data := make([]byte, stride*height)

	return &Raster{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromBytes wraps existing sample data without copying.
// The caller must ensure data remains valid for the lifetime of the Raster.
// Stride must be at least format.RowBytes(width).
func FromBytes(data []byte, width, height int, format Format, stride int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	minStride := format.RowBytes(width)
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Raster{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	newData := make([]byte, len(r.data))
	copy(newData, r.data)

	return &Raster{
		data:   newData,
		width:  r.width,
		height: r.height,
		stride: r.stride,
		format: r.format,
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Stride returns the number of bytes per row (including padding).
func (r *Raster) Stride() int {
	return r.stride
}

// Format returns the pixel format.
func (r *Raster) Format() Format {
	return r.format
}

// Bounds returns the raster dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Data returns the raw sample data slice.
// Callers outside the construction path must treat it as read-only.
func (r *Raster) Data() []byte {
	return r.data
}

// Row returns a slice of the sample data for row y, excluding stride padding.
// Returns nil if y is out of bounds.
func (r *Raster) Row(y int) []byte {
	if y < 0 || y >= r.height {
		return nil
	}
	start := y * r.stride
	end := start + r.format.RowBytes(r.width)
	return r.data[start:end]
}

// SampleOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (r *Raster) SampleOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return y*r.stride + x*r.format.BytesPerPixel()
}

// Sample returns the value of channel ch at (x, y) in native units:
// 0-255 for 8-bit formats, 0-65535 for 16-bit.
// Returns 0 if the coordinates or channel are out of bounds.
func (r *Raster) Sample(x, y, ch int) uint16 {
	offset := r.SampleOffset(x, y)
	if offset < 0 || ch < 0 || ch >= r.format.Channels() {
		return 0
	}

	switch r.format {
	case FormatGray8:
		return uint16(r.data[offset])
	case FormatGray16:
		return binary.LittleEndian.Uint16(r.data[offset:])
	case FormatRGB8:
		return uint16(r.data[offset+ch])
	default:
		return 0
	}
}

// SetSample sets channel ch at (x, y) to v in native units.
// For 8-bit formats only the low byte of v is stored.
// Returns ErrOutOfBounds if the coordinates or channel are out of bounds.
func (r *Raster) SetSample(x, y, ch int, v uint16) error {
	offset := r.SampleOffset(x, y)
	if offset < 0 || ch < 0 || ch >= r.format.Channels() {
		return ErrOutOfBounds
	}

	switch r.format {
	case FormatGray8:
		r.data[offset] = byte(v)
	case FormatGray16:
		binary.LittleEndian.PutUint16(r.data[offset:], v)
	case FormatRGB8:
		r.data[offset+ch] = byte(v)
	}
	return nil
}

// Fill sets every sample of every channel to v in native units.
// For 8-bit formats only the low byte of v is stored.
func (r *Raster) Fill(v uint16) {
	proto := make([]byte, r.format.RowBytes(r.width))
	switch r.format {
	case FormatGray16:
		for x := 0; x < len(proto); x += 2 {
			binary.LittleEndian.PutUint16(proto[x:], v)
		}
	default:
		for x := range proto {
			proto[x] = byte(v)
		}
	}
	for y := range r.height {
		copy(r.Row(y), proto)
	}
}

// ByteSize returns the total size of the sample data in bytes.
func (r *Raster) ByteSize() int {
	return len(r.data)
}
