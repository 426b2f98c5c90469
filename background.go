package gel

import (
	"image/color"

	"github.com/cenkalti/dominantcolor"
)

// BackgroundColor estimates the background color of a gel scan as the
// dominant color of the raster. Gel backgrounds dominate the frame by
// area, so the dominant color tracks them well; use it as a rotation fill
// so exposed corners blend into the scan.
func BackgroundColor(r *Raster) color.Color {
	return dominantcolor.Find(r.ToImage())
}
