// Package gel provides the intensity transform and histogram engine of a
// gel-electrophoresis image viewer.
//
// # Overview
//
// gel loads gel scans at their native bit depth (8-bit grayscale, 8-bit RGB,
// or 16-bit grayscale), computes 256-bucket intensity histograms, applies a
// windowing + contrast + brightness display transform, and rotates, flips and
// inverts images non-destructively through an edit session. It is a headless
// engine: it produces rasters and numbers, never widgets.
//
// # Quick Start
//
//	import "github.com/gelscope/gel"
//
//	// Load a scan (PNG, JPEG, GIF, TIFF or BMP).
//	img, err := gel.LoadImage("scan.tif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Edit non-destructively.
//	s := gel.NewSession(img)
//	s.Rotate(90)
//	s.Adjust(gel.AutoLevel(s.Current()), gel.Adjust{Brightness: 1.1, Contrast: 1.2})
//
//	// Save the display image; the original stays untouched.
//	s.Current().Save("out.png")
//
// # Bit Depths
//
// Every raster classifies as 8-bit or 16-bit from its storage format alone:
// single-channel 16-bit storage is 16-bit, everything else is 8-bit. Window
// parameters are expressed in the source's native units (0-255 or 0-65535).
// Applying the intensity transform to a 16-bit source always produces an
// 8-bit grayscale display raster; all other transforms keep the source
// format.
//
// # Architecture
//
// The public API at the root wraps implementation packages:
//   - internal/raster: pixel buffers, formats, depth classification, codec
//   - internal/hist: histograms, cumulative counts, auto-level windows
//   - internal/intensity: lookup tables, the float pipeline, inversion
//   - internal/transform: flips, quarter turns, arbitrary-angle rotation
//   - internal/profile: lane intensity profiles
//   - internal/parallel: the worker pool behind row-parallel pixel loops
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees, positive is counter-clockwise on screen
package gel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
