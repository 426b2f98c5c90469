// Command gelcli loads a gel scan, applies intensity and geometric
// transforms, prints histogram and lane-profile reports, and saves the
// result.
//
// Examples:
//
//	# Auto-level a 16-bit TIFF down to an 8-bit PNG.
//	gelcli -in scan.tif -autolevel -out display.png
//
//	# Straighten a crooked scan, filling corners with the gel background.
//	gelcli -in scan.png -rotate 3.5 -fill auto -out straight.png
//
//	# Inspect a lane without writing anything.
//	gelcli -in scan.png -hist -profile 240
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gelscope/gel"
)

func main() {
	var (
		in  = flag.String("in", "", "input image (png, jpg, gif, tif, bmp)")
		out = flag.String("out", "", "output image; empty means no file is written")

		winMin     = flag.Float64("min", -1, "window minimum in native units (-1 = unset)")
		winMax     = flag.Float64("max", -1, "window maximum in native units (-1 = unset)")
		brightness = flag.Float64("brightness", 1, "brightness factor, 1 = unchanged")
		contrast   = flag.Float64("contrast", 1, "contrast factor, 1 = unchanged")
		autoLevel  = flag.Bool("autolevel", false, "window to the middle 98% of the histogram")
		invert     = flag.Bool("invert", false, "invert intensities")

		rotate = flag.Float64("rotate", 0, "rotation in degrees, positive counter-clockwise")
		expand = flag.Bool("expand", true, "grow the canvas to hold the rotated image")
		fill   = flag.String("fill", "black", "rotation fill: black, white, auto, or #rrggbb")
		flip   = flag.String("flip", "", "mirror axis: h or v")

		hist       = flag.Bool("hist", false, "print a histogram report")
		profileAt  = flag.Int("profile", -1, "print a lane profile report for the lane centered at this column")
		laneWidth  = flag.Int("lanewidth", 20, "lane width in pixels for -profile")
		percentile = flag.Float64("background", gel.DefaultBackgroundPercentile, "background percentile for -profile")
		verbose    = flag.Bool("v", false, "log per-operation diagnostics to stderr")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		gel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := gel.LoadImage(*in)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *in, err)
	}

	s := gel.NewSession(img)

	// Geometry first, intensity last: 16-bit sources keep their full
	// precision through rotation and only downconvert at display time.
	if *rotate != 0 {
		fillColor, err := parseFill(*fill, img)
		if err != nil {
			log.Fatalf("Failed to parse -fill: %v", err)
		}
		s.Rotate(*rotate, gel.WithExpand(*expand), gel.WithFill(fillColor))
	}
	if *flip != "" {
		axis, ok := parseFlip(*flip)
		if !ok {
			log.Fatalf("Failed to parse -flip %q: want h or v", *flip)
		}
		s.Flip(axis)
	}
	if *invert {
		s.Invert()
	}

	adjust := gel.Adjust{Brightness: *brightness, Contrast: *contrast}
	switch {
	case *autoLevel:
		s.Adjust(gel.AutoLevel(s.Current()), adjust)
	case *winMin >= 0 || *winMax >= 0:
		s.Adjust(explicitWindow(*winMin, *winMax, gel.Classify(s.Current())), adjust)
	case adjust != gel.Neutral:
		s.Adjust(gel.FullRange(gel.Classify(s.Current())), adjust)
	}

	p := message.NewPrinter(language.English)
	if *hist {
		printHistogram(p, s.Current())
	}
	if *profileAt >= 0 {
		printProfile(p, s.Current(), *profileAt, *laneWidth, *percentile)
	}

	if *out != "" {
		if err := s.Current().Save(*out); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		w, h := s.Current().Bounds()
		log.Printf("Saved %s (%dx%d %s)\n", *out, w, h, s.Current().Format())
	}
}

// parseFill maps the -fill flag onto a color. "auto" estimates the scan's
// background color; anything starting with "#" parses as a hex color.
func parseFill(s string, img *gel.Raster) (color.Color, error) {
	switch strings.ToLower(s) {
	case "", "black":
		return color.Black, nil
	case "white":
		return color.White, nil
	case "auto":
		return gel.BackgroundColor(img), nil
	default:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// parseFlip maps the -flip flag onto an axis.
func parseFlip(s string) (gel.FlipAxis, bool) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return gel.FlipHorizontal, true
	case "v", "vertical":
		return gel.FlipVertical, true
	default:
		return 0, false
	}
}

// explicitWindow fills the unset half of a partially specified window with
// the matching native bound.
func explicitWindow(lo, hi float64, d gel.Depth) gel.Window {
	w := gel.Window{Min: lo, Max: hi}
	if w.Min < 0 {
		w.Min = 0
	}
	if w.Max < 0 {
		w.Max = d.Max
	}
	return w
}

// printHistogram reports the histogram shape: totals, extremes, the peak
// bucket, and the window auto-level would pick.
func printHistogram(p *message.Printer, r *gel.Raster) {
	h := gel.ComputeHistogram(r)
	depth := gel.Classify(r)

	var (
		peak     int
		lowest   = -1
		highest  int
		nonEmpty int
	)
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		nonEmpty++
		if lowest < 0 {
			lowest = i
		}
		highest = i
		if c > h.Counts[peak] {
			peak = i
		}
	}
	if lowest < 0 {
		lowest = 0
	}

	lo, hi := gel.AutoWindow(h, gel.DefaultLowFraction, gel.DefaultHighFraction)

	p.Printf("histogram (%d-bit, %d buckets)\n", depth.Bits, gel.HistogramBuckets)
	p.Printf("  samples     %d\n", h.Total())
	p.Printf("  occupied    %d buckets, anchors %.0f to %.0f\n", nonEmpty, h.Anchors[lowest], h.Anchors[highest])
	p.Printf("  peak        anchor %.0f with %d samples\n", h.Anchors[peak], h.Counts[peak])
	p.Printf("  auto level  buckets %d to %d\n", lo, hi)
}

// printProfile reports a lane profile: its extent, extremes, and background
// estimate.
func printProfile(p *message.Printer, r *gel.Raster, x, width int, percentile float64) {
	lane, err := gel.LaneProfile(r, x, width, 0)
	if err != nil {
		log.Fatalf("Failed to extract profile: %v", err)
	}
	lane = gel.SmoothProfile(lane, gel.DefaultSmoothWindow)

	lo, hi := lane[0], lane[0]
	var sum float64
	for _, v := range lane {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += v
	}

	p.Printf("lane profile at column %d (width %d)\n", x, width)
	p.Printf("  rows        %d\n", len(lane))
	p.Printf("  intensity   min %.1f, mean %.1f, max %.1f\n", lo, sum/float64(len(lane)), hi)
	p.Printf("  background  %.1f (p%.0f)\n", gel.ProfileBackground(lane, percentile), percentile)
}
