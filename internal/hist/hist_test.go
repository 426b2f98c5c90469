package hist

import (
	"testing"

	"github.com/gelscope/gel/internal/raster"
)

func mustRaster(t *testing.T, w, h int, f raster.Format) *raster.Raster {
	t.Helper()
	r, err := raster.New(w, h, f)
	if err != nil {
		t.Fatalf("raster.New() error = %v", err)
	}
	return r
}

func TestComputeUniform8(t *testing.T) {
	r := mustRaster(t, 7, 5, raster.FormatRGB8)
	r.Fill(77)

	h := Compute(r)

	// Every channel of every pixel pools into the histogram.
	want := uint64(7 * 5 * 3)
	if got := h.Counts[77]; got != want {
		t.Errorf("Counts[77] = %d, want %d", got, want)
	}
	if got := h.Total(); got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
}

func TestComputeUniform16(t *testing.T) {
	r := mustRaster(t, 4, 4, raster.FormatGray16)
	r.Fill(32768)

	h := Compute(r)

	// 32768 >> 8 = 128.
	if got := h.Counts[128]; got != 16 {
		t.Errorf("Counts[128] = %d, want 16", got)
	}
	if got := h.Total(); got != 16 {
		t.Errorf("Total() = %d, want 16", got)
	}
}

func TestAnchors8(t *testing.T) {
	r := mustRaster(t, 1, 1, raster.FormatGray8)
	h := Compute(r)

	// 8-bit buckets anchor at their left edge.
	for _, i := range []int{0, 1, 100, 255} {
		if got := h.Anchors[i]; got != float64(i) {
			t.Errorf("Anchors[%d] = %v, want %d", i, got, i)
		}
	}
}

func TestAnchors16(t *testing.T) {
	r := mustRaster(t, 1, 1, raster.FormatGray16)
	h := Compute(r)

	// 16-bit buckets anchor at their midpoint.
	tests := []struct {
		bucket int
		want   float64
	}{
		{0, 128},
		{1, 384},
		{128, 32896},
		{255, 65408},
	}
	for _, tt := range tests {
		if got := h.Anchors[tt.bucket]; got != tt.want {
			t.Errorf("Anchors[%d] = %v, want %v", tt.bucket, got, tt.want)
		}
	}
}

func TestBucketBoundaries16(t *testing.T) {
	tests := []struct {
		value  uint16
		bucket int
	}{
		{0, 0},
		{255, 0},
		{256, 1},
		{32767, 127},
		{32768, 128},
		{65535, 255},
	}

	for _, tt := range tests {
		r := mustRaster(t, 1, 1, raster.FormatGray16)
		_ = r.SetSample(0, 0, 0, tt.value)

		h := Compute(r)
		if got := h.Counts[tt.bucket]; got != 1 {
			t.Errorf("value %d: Counts[%d] = %d, want 1", tt.value, tt.bucket, got)
		}
	}
}

func TestComputeSumProperty(t *testing.T) {
	tests := []struct {
		name   string
		format raster.Format
		w, h   int
	}{
		{"Gray8", raster.FormatGray8, 33, 21},
		{"Gray16", raster.FormatGray16, 17, 9},
		{"RGB8", raster.FormatRGB8, 13, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, tt.w, tt.h, tt.format)
			for y := range tt.h {
				for x := range tt.w {
					for ch := range tt.format.Channels() {
						_ = r.SetSample(x, y, ch, uint16(x*37+y*11+ch))
					}
				}
			}

			h := Compute(r)
			want := uint64(tt.w * tt.h * tt.format.Channels())
			if got := h.Total(); got != want {
				t.Errorf("Total() = %d, want %d", got, want)
			}
		})
	}
}

func TestComputeMatchesSerialCount(t *testing.T) {
	// Row-striped image large enough to fan out across workers: row y holds
	// the value y%256 everywhere, so each bucket's count is exactly
	// width * (number of rows with that value).
	const w, h = 320, 300
	r := mustRaster(t, w, h, raster.FormatGray8)
	for y := range h {
		row := r.Row(y)
		for x := range row {
			row[x] = byte(y % 256)
		}
	}

	hist := Compute(r)
	for v := range 256 {
		rows := uint64(0)
		for y := range h {
			if y%256 == v {
				rows++
			}
		}
		if got := hist.Counts[v]; got != rows*w {
			t.Fatalf("Counts[%d] = %d, want %d", v, got, rows*w)
		}
	}
}

func TestCumulative(t *testing.T) {
	h := &Histogram{}
	h.Counts[3] = 5
	h.Counts[10] = 7
	h.Counts[255] = 1

	cum := h.Cumulative()
	if cum[2] != 0 {
		t.Errorf("Cumulative()[2] = %d, want 0", cum[2])
	}
	if cum[3] != 5 {
		t.Errorf("Cumulative()[3] = %d, want 5", cum[3])
	}
	if cum[9] != 5 {
		t.Errorf("Cumulative()[9] = %d, want 5", cum[9])
	}
	if cum[10] != 12 {
		t.Errorf("Cumulative()[10] = %d, want 12", cum[10])
	}
	if cum[255] != 13 {
		t.Errorf("Cumulative()[255] = %d, want 13", cum[255])
	}
}

func TestBucketWidth(t *testing.T) {
	if got := BucketWidth(raster.FormatGray8.Depth()); got != 1 {
		t.Errorf("BucketWidth(8-bit) = %v, want 1", got)
	}
	if got := BucketWidth(raster.FormatGray16.Depth()); got != 256 {
		t.Errorf("BucketWidth(16-bit) = %v, want 256", got)
	}
}

func BenchmarkCompute8(b *testing.B) {
	r, _ := raster.New(1024, 1024, raster.FormatGray8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compute(r)
	}
}

func BenchmarkCompute16(b *testing.B) {
	r, _ := raster.New(1024, 1024, raster.FormatGray16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compute(r)
	}
}
