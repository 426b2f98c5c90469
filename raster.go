package gel

import (
	"image"
	"io"

	"github.com/gelscope/gel/internal/raster"
)

// Raster is a public alias for the internal pixel buffer.
// It holds image data row-major in one of three storage formats, and carries
// the codec methods (Save, EncodePNG, EncodeTIFF, ...) and the std image
// bridge (ToImage).
type Raster = raster.Raster

// Format identifies a raster's storage format.
type Format = raster.Format

// Storage formats.
const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 = raster.FormatGray8

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, little-endian).
	// The one format that classifies as 16-bit.
	FormatGray16 = raster.FormatGray16

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 = raster.FormatRGB8
)

// Depth describes a raster's bit depth: the bits per sample and the largest
// representable sample value.
type Depth = raster.Depth

// MaxDim is the largest width or height accepted by the image decoders.
const MaxDim = raster.MaxDim

// Raster and codec errors.
var (
	ErrInvalidDimensions = raster.ErrInvalidDimensions
	ErrInvalidFormat     = raster.ErrInvalidFormat
	ErrInvalidStride     = raster.ErrInvalidStride
	ErrDataTooSmall      = raster.ErrDataTooSmall
	ErrOutOfBounds       = raster.ErrOutOfBounds
	ErrUnsupportedFormat = raster.ErrUnsupportedFormat
	ErrEmptyData         = raster.ErrEmptyData
	ErrImageTooLarge     = raster.ErrImageTooLarge
)

// NewRaster creates a zero-filled raster with the given dimensions and format.
func NewRaster(width, height int, format Format) (*Raster, error) {
	return raster.New(width, height, format)
}

// RasterFromBytes wraps existing pixel data in a raster without copying.
// The stride is in bytes; pass 0 for tightly packed rows.
func RasterFromBytes(data []byte, width, height int, format Format, stride int) (*Raster, error) {
	return raster.FromBytes(data, width, height, format, stride)
}

// RasterFromImage converts a standard library image into a raster:
// image.Gray stays 8-bit grayscale, image.Gray16 stays 16-bit grayscale,
// everything else becomes 8-bit RGB.
func RasterFromImage(img image.Image) (*Raster, error) {
	return raster.FromImage(img)
}

// LoadImage loads an image file into a raster, auto-detecting the file
// format from its content. Supported formats: PNG, JPEG, GIF, TIFF, BMP.
func LoadImage(path string) (*Raster, error) {
	return raster.Load(path)
}

// DecodeImage decodes an image from a reader into a raster, auto-detecting
// the format.
func DecodeImage(rd io.Reader) (*Raster, error) {
	return raster.Decode(rd)
}

// Classify reports the bit depth a raster's pixel data is processed at.
// Derived from the storage format alone: FormatGray16 is {16, 65535},
// FormatGray8 and FormatRGB8 are {8, 255}.
func Classify(r *Raster) Depth {
	return raster.Classify(r)
}
