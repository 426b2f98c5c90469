package gel

import "testing"

func TestBackgroundColorUniform(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"gray8", FormatGray8},
		{"rgb8", FormatRGB8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRaster(32, 32, tt.format)
			if err != nil {
				t.Fatalf("NewRaster() error = %v", err)
			}
			r.Fill(200)

			got := BackgroundColor(r)
			cr, cg, cb, _ := got.RGBA()
			for _, ch := range []struct {
				name string
				v    uint32
			}{{"r", cr >> 8}, {"g", cg >> 8}, {"b", cb >> 8}} {
				if ch.v < 197 || ch.v > 203 {
					t.Errorf("%s = %d, want within 3 of 200", ch.name, ch.v)
				}
			}
		})
	}
}

func TestBackgroundColorPicksMajority(t *testing.T) {
	r, err := NewRaster(32, 32, FormatGray8)
	if err != nil {
		t.Fatalf("NewRaster() error = %v", err)
	}
	r.Fill(180)
	// A dark band over a quarter of the image, like a heavy lane of bands:
	// the dominant color must still be the surrounding gel.
	for y := 12; y < 20; y++ {
		for x := range 32 {
			r.SetSample(x, y, 0, 60)
		}
	}

	got := BackgroundColor(r)
	cr, _, _, _ := got.RGBA()
	if v := cr >> 8; v < 170 || v > 190 {
		t.Errorf("background luminance = %d, want near 180 (the majority value)", v)
	}
}
