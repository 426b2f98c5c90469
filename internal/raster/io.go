package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")

	// ErrEmptyData is returned when encoded image data is empty.
	ErrEmptyData = errors.New("raster: empty data")

	// ErrImageTooLarge is returned when a decoded image exceeds MaxDim on
	// either axis.
	ErrImageTooLarge = errors.New("raster: image too large")
)

// MaxDim is the largest width or height accepted from a decoder. Gel scans
// beyond this size are rejected at load time so the transform pipeline never
// has to bound its own loops.
const MaxDim = 10000

// jpegQuality is the encoder quality used by Save for .jpg/.jpeg output.
const jpegQuality = 95

// Load reads and decodes an image file, auto-detecting the format from its
// content. Supported formats: PNG, JPEG, GIF, TIFF, BMP.
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("raster: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
// Returns ErrImageTooLarge if either dimension exceeds MaxDim.
func Decode(rd io.Reader) (*Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDim || bounds.Dy() > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrImageTooLarge, bounds.Dx(), bounds.Dy(), MaxDim)
	}
	return FromImage(img)
}

// DecodeBytes decodes an image from a byte slice, auto-detecting the format.
func DecodeBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// FromImage converts a standard library image into a Raster, normalizing its
// storage onto the three supported layouts:
//
//   - image.Gray stays single-channel 8-bit;
//   - image.Gray16 stays single-channel 16-bit (the one layout that
//     classifies as 16-bit downstream);
//   - everything else (RGBA, NRGBA, YCbCr, paletted, ...) becomes
//     three-channel 8-bit, dropping alpha.
//
// FromImage itself accepts any dimensions; the MaxDim gate lives in Decode
// so that images produced internally, such as expanded rotations of a scan
// near the limit, are not rejected on the way back in.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		r, err := New(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			srcStart := y * src.Stride
			copy(r.Row(y), src.Pix[srcStart:srcStart+width])
		}
		return r, nil

	case *image.Gray16:
		r, err := New(width, height, FormatGray16)
		if err != nil {
			return nil, err
		}
		for y := range height {
			srcRow := src.Pix[y*src.Stride:]
			dstRow := r.Row(y)
			for x := range width {
				// Gray16 in the image package is big-endian; the
				// raster buffer is little-endian.
				dstRow[x*2] = srcRow[x*2+1]
				dstRow[x*2+1] = srcRow[x*2]
			}
		}
		return r, nil

	case *image.NRGBA:
		return rgb8FromPix(src.Pix, src.Stride, width, height)

	case *image.RGBA:
		return rgb8FromPix(src.Pix, src.Stride, width, height)

	default:
		r, err := New(width, height, FormatRGB8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			dstRow := r.Row(y)
			for x := range width {
				cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				// RGBA() returns 16-bit values, scale to 8-bit.
				dstRow[x*3] = byte(cr >> 8)
				dstRow[x*3+1] = byte(cg >> 8)
				dstRow[x*3+2] = byte(cb >> 8)
			}
		}
		return r, nil
	}
}

// rgb8FromPix packs 4-byte RGBA/NRGBA rows into 3-byte RGB rows.
func rgb8FromPix(pix []byte, stride, width, height int) (*Raster, error) {
	r, err := New(width, height, FormatRGB8)
	if err != nil {
		return nil, err
	}
	for y := range height {
		srcRow := pix[y*stride:]
		dstRow := r.Row(y)
		for x := range width {
			dstRow[x*3] = srcRow[x*4]
			dstRow[x*3+1] = srcRow[x*4+1]
			dstRow[x*3+2] = srcRow[x*4+2]
		}
	}
	return r, nil
}

// ToImage converts the raster to a standard library image.Image:
// *image.Gray for Gray8, *image.Gray16 for Gray16, *image.NRGBA (opaque)
// for RGB8.
func (r *Raster) ToImage() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)

	switch r.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range r.height {
			copy(gray.Pix[y*gray.Stride:], r.Row(y))
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range r.height {
			row := r.Row(y)
			dstStart := y * gray16.Stride
			for x := range r.width {
				// Raster buffer is little-endian, image.Gray16 big-endian.
				gray16.Pix[dstStart+x*2] = row[x*2+1]
				gray16.Pix[dstStart+x*2+1] = row[x*2]
			}
		}
		return gray16

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range r.height {
			row := r.Row(y)
			dstStart := y * nrgba.Stride
			for x := range r.width {
				srcOff := x * 3
				dstOff := dstStart + x*4
				nrgba.Pix[dstOff] = row[srcOff]
				nrgba.Pix[dstOff+1] = row[srcOff+1]
				nrgba.Pix[dstOff+2] = row[srcOff+2]
				nrgba.Pix[dstOff+3] = 255
			}
		}
		return nrgba
	}
}

// toImage8 is ToImage with 16-bit grayscale reduced to its high bytes, for
// encoders without a 16-bit storage class (JPEG, GIF, BMP).
func (r *Raster) toImage8() image.Image {
	if r.format != FormatGray16 {
		return r.ToImage()
	}
	gray := image.NewGray(image.Rect(0, 0, r.width, r.height))
	for y := range r.height {
		row := r.Row(y)
		dstStart := y * gray.Stride
		for x := range r.width {
			gray.Pix[dstStart+x] = row[x*2+1] // high byte
		}
	}
	return gray
}

// Save encodes the raster to a file, choosing the codec by extension.
// Supported extensions: .png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp.
// PNG and TIFF preserve 16-bit grayscale; the others store the high bytes.
func (r *Raster) Save(path string) error {
	var encode func(io.Writer) error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = r.EncodePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer) error { return r.EncodeJPEG(w, jpegQuality) }
	case ".gif":
		encode = r.EncodeGIF
	case ".tif", ".tiff":
		encode = r.EncodeTIFF
	case ".bmp":
		encode = r.EncodeBMP
	default:
		return fmt.Errorf("raster: save %q: %w", ext, ErrUnsupportedFormat)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("raster: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes the raster as PNG to the given writer.
// 16-bit grayscale is preserved.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.ToImage()); err != nil {
		return fmt.Errorf("raster: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the raster as JPEG to the given writer with the given
// quality (1-100). 16-bit grayscale is reduced to 8-bit.
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, r.toImage8(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("raster: encode JPEG: %w", err)
	}
	return nil
}

// EncodeGIF encodes the raster as GIF to the given writer.
// 16-bit grayscale is reduced to 8-bit.
func (r *Raster) EncodeGIF(w io.Writer) error {
	if err := gif.Encode(w, r.toImage8(), nil); err != nil {
		return fmt.Errorf("raster: encode GIF: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the raster as deflate-compressed TIFF to the given
// writer. 16-bit grayscale is preserved.
func (r *Raster) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, r.ToImage(), opts); err != nil {
		return fmt.Errorf("raster: encode TIFF: %w", err)
	}
	return nil
}

// EncodeBMP encodes the raster as BMP to the given writer.
// 16-bit grayscale is reduced to 8-bit.
func (r *Raster) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, r.toImage8()); err != nil {
		return fmt.Errorf("raster: encode BMP: %w", err)
	}
	return nil
}
