package transform

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gelscope/gel/internal/raster"
)

func TestRotate90(t *testing.T) {
	out := Rotate90(grid32(t))

	// A quarter turn counter-clockwise carries the right edge to the top.
	if w, h := out.Bounds(); w != 2 || h != 3 {
		t.Fatalf("Bounds() = %dx%d, want 2x3", w, h)
	}
	checkRows(t, out, [][]byte{
		{3, 6},
		{2, 5},
		{1, 4},
	})
}

func TestRotate180(t *testing.T) {
	out := Rotate180(grid32(t))

	if w, h := out.Bounds(); w != 3 || h != 2 {
		t.Fatalf("Bounds() = %dx%d, want 3x2", w, h)
	}
	checkRows(t, out, [][]byte{
		{6, 5, 4},
		{3, 2, 1},
	})
}

func TestRotate270(t *testing.T) {
	out := Rotate270(grid32(t))

	// A quarter turn clockwise carries the left edge to the top.
	if w, h := out.Bounds(); w != 2 || h != 3 {
		t.Fatalf("Bounds() = %dx%d, want 2x3", w, h)
	}
	checkRows(t, out, [][]byte{
		{4, 1},
		{5, 2},
		{6, 3},
	})
}

func TestQuarterTurnsCompose(t *testing.T) {
	src := grid32(t)

	out := Rotate90(Rotate90(Rotate90(Rotate90(src))))
	if !bytes.Equal(out.Data(), src.Data()) {
		t.Error("four quarter turns are not the identity")
	}

	if out := Rotate180(Rotate180(src)); !bytes.Equal(out.Data(), src.Data()) {
		t.Error("two half turns are not the identity")
	}

	if out := Rotate270(Rotate90(src)); !bytes.Equal(out.Data(), src.Data()) {
		t.Error("Rotate270 does not undo Rotate90")
	}

	half := Rotate90(Rotate90(src))
	if !bytes.Equal(half.Data(), Rotate180(src).Data()) {
		t.Error("two quarter turns differ from one half turn")
	}
}

func TestRotateQuarterTurnFastPaths(t *testing.T) {
	src := grid32(t)

	tests := []struct {
		angle float64
		want  *raster.Raster
	}{
		{0, src},
		{90, Rotate90(src)},
		{180, Rotate180(src)},
		{270, Rotate270(src)},
		{-90, Rotate270(src)},  // negative angles normalize
		{450, Rotate90(src)},   // and so do full extra turns
		{-360, src},
	}

	for _, tt := range tests {
		out := Rotate(src, tt.angle, true, nil)
		if !bytes.Equal(out.Data(), tt.want.Data()) {
			t.Errorf("Rotate(%v) differs from the exact permutation", tt.angle)
		}
	}
}

func TestRotateZeroReturnsClone(t *testing.T) {
	src := grid32(t)
	out := Rotate(src, 0, true, nil)

	if !bytes.Equal(out.Data(), src.Data()) {
		t.Fatal("Rotate(0) changed pixel data")
	}
	out.Row(0)[0] = 99
	if src.Row(0)[0] == 99 {
		t.Error("Rotate(0) returned a raster sharing the source buffer")
	}
}

func TestRotateExpandGrowsCanvas(t *testing.T) {
	r, err := raster.New(100, 100, raster.FormatGray8)
	if err != nil {
		t.Fatalf("raster.New() error = %v", err)
	}

	out := Rotate(r, 45, true, nil)
	if w, h := out.Bounds(); w != 141 || h != 141 {
		t.Errorf("Bounds() = %dx%d, want 141x141", w, h)
	}
}

func TestRotateNoExpandKeepsCanvas(t *testing.T) {
	r, err := raster.New(100, 60, raster.FormatGray8)
	if err != nil {
		t.Fatalf("raster.New() error = %v", err)
	}

	out := Rotate(r, 45, false, nil)
	if w, h := out.Bounds(); w != 100 || h != 60 {
		t.Errorf("Bounds() = %dx%d, want 100x60", w, h)
	}
}

func TestRotateFillsExposedCorners(t *testing.T) {
	r, err := raster.New(8, 8, raster.FormatGray8)
	if err != nil {
		t.Fatalf("raster.New() error = %v", err)
	}
	r.Fill(255)

	out := Rotate(r, 45, true, nil)
	w, h := out.Bounds()

	// Corners rotate out of the source square and keep the fill.
	if got := out.Sample(0, 0, 0); got != 0 {
		t.Errorf("corner Sample(0, 0) = %d, want 0 (black fill)", got)
	}
	if got := out.Sample(w-1, h-1, 0); got != 0 {
		t.Errorf("corner Sample(%d, %d) = %d, want 0 (black fill)", w-1, h-1, got)
	}
	// The center stays inside the source.
	if got := out.Sample(w/2, h/2, 0); got != 255 {
		t.Errorf("center Sample() = %d, want 255", got)
	}
}

func TestRotateCustomFill(t *testing.T) {
	r, err := raster.New(8, 8, raster.FormatGray8)
	if err != nil {
		t.Fatalf("raster.New() error = %v", err)
	}
	r.Fill(0)

	out := Rotate(r, 45, true, color.White)
	if got := out.Sample(0, 0, 0); got != 255 {
		t.Errorf("corner Sample(0, 0) = %d, want 255 (white fill)", got)
	}
}

func TestRotatePreservesFormat(t *testing.T) {
	tests := []struct {
		name   string
		format raster.Format
		value  uint16
	}{
		{"Gray8", raster.FormatGray8, 180},
		{"Gray16", raster.FormatGray16, 30000},
		{"RGB8", raster.FormatRGB8, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := raster.New(16, 12, tt.format)
			if err != nil {
				t.Fatalf("raster.New() error = %v", err)
			}
			r.Fill(tt.value)

			out := Rotate(r, 30, true, nil)
			if out.Format() != tt.format {
				t.Fatalf("Format() = %v, want %v", out.Format(), tt.format)
			}

			// The resampled interior of a uniform image keeps its value to
			// within interpolation rounding.
			w, h := out.Bounds()
			got := int(out.Sample(w/2, h/2, 0))
			if got < int(tt.value)-16 || got > int(tt.value)+16 {
				t.Errorf("center Sample() = %d, want about %d", got, tt.value)
			}
		})
	}
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	src := grid32(t)
	snapshot := bytes.Clone(src.Data())

	Rotate(src, 33, true, nil)
	Rotate90(src)
	Rotate180(src)
	Rotate270(src)

	if !bytes.Equal(src.Data(), snapshot) {
		t.Error("rotation mutated its input raster")
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h  int
		angle float64
		wantW int
		wantH int
	}{
		{100, 100, 45, 141, 141},
		{100, 50, 90, 50, 100},
		{100, 50, 180, 100, 50},
		{8, 8, 45, 11, 11},
	}

	for _, tt := range tests {
		gotW, gotH := rotatedSize(tt.w, tt.h, tt.angle)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("rotatedSize(%d, %d, %v) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.angle, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{-360, 0},
		{450, 90},
		{-45, 315},
	}

	for _, tt := range tests {
		if got := normalizeAngle(tt.in); got != tt.want {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkRotate90(b *testing.B) {
	r, _ := raster.New(1024, 1024, raster.FormatGray8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rotate90(r)
	}
}

func BenchmarkRotateArbitrary(b *testing.B) {
	r, _ := raster.New(512, 512, raster.FormatGray8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rotate(r, 33, true, nil)
	}
}
