package raster

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format        Format
		bytesPerPixel int
		channels      int
		bitsPerSample int
	}{
		{FormatGray8, 1, 1, 8},
		{FormatGray16, 2, 1, 16},
		{FormatRGB8, 3, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bytesPerPixel {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bytesPerPixel)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.BitsPerSample(); got != tt.bitsPerSample {
				t.Errorf("BitsPerSample() = %d, want %d", got, tt.bitsPerSample)
			}
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	for _, f := range []Format{FormatGray8, FormatGray16, FormatRGB8} {
		if !f.IsValid() {
			t.Errorf("IsValid() = false for %v, want true", f)
		}
	}
	if Format(250).IsValid() {
		t.Error("IsValid() = true for Format(250), want false")
	}
}

func TestFormatRowBytes(t *testing.T) {
	if got := FormatRGB8.RowBytes(10); got != 30 {
		t.Errorf("RowBytes(10) = %d, want 30", got)
	}
	if got := FormatGray16.RowBytes(7); got != 14 {
		t.Errorf("RowBytes(7) = %d, want 14", got)
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		format Format
		bits   int
		max    float64
	}{
		{FormatGray8, 8, 255},
		{FormatRGB8, 8, 255},
		{FormatGray16, 16, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			d := tt.format.Depth()
			if d.Bits != tt.bits {
				t.Errorf("Depth().Bits = %d, want %d", d.Bits, tt.bits)
			}
			if d.Max != tt.max {
				t.Errorf("Depth().Max = %v, want %v", d.Max, tt.max)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	// Depth comes from the storage format alone. An 8-bit grayscale raster
	// classifies as 8-bit even when its content never exceeds a narrow band,
	// and a 16-bit raster holding only small values is still 16-bit.
	r16, err := New(4, 4, FormatGray16)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r16.Fill(12)

	if d := Classify(r16); d.Bits != 16 || d.Max != 65535 {
		t.Errorf("Classify(Gray16) = %+v, want {16 65535}", d)
	}

	r8, err := New(4, 4, FormatGray8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r8.Fill(255)

	if d := Classify(r8); d.Bits != 8 || d.Max != 255 {
		t.Errorf("Classify(Gray8) = %+v, want {8 255}", d)
	}
}
