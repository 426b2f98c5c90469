// Package hist computes fixed-width intensity histograms over gel rasters.
//
// Histograms always have 256 buckets regardless of bit depth. For 8-bit
// sources each bucket covers exactly one sample value; for 16-bit sources
// each bucket covers 256 consecutive sample values. Multi-channel rasters
// pool every channel into the one histogram.
package hist

import (
	"encoding/binary"
	"sync"

	"github.com/gelscope/gel/internal/parallel"
	"github.com/gelscope/gel/internal/raster"
)

// Buckets is the number of histogram buckets for every bit depth.
const Buckets = 256

// Histogram is the pooled intensity distribution of one raster.
//
// Anchors[i] is the representative intensity of bucket i in native sample
// units. 8-bit histograms anchor buckets at their left edge (Anchors[i] == i)
// while 16-bit histograms anchor them at their midpoint
// (Anchors[i] == i*256 + 128). Consumers must not assume one convention or a
// uniform bucket width across depths; the asymmetry is part of the published
// histogram shape and is kept for compatibility.
type Histogram struct {
	Anchors [Buckets]float64
	Counts  [Buckets]uint64
}

// Compute builds the intensity histogram of r.
//
// The counts always sum to width*height*channels: every sample of every
// channel lands in exactly one bucket. Rows are accumulated in parallel into
// per-chunk counts and merged, which is equivalent to the serial sum.
func Compute(r *raster.Raster) *Histogram {
	h := &Histogram{}

	depth := raster.Classify(r)
	if depth.Bits == 16 {
		for i := range h.Anchors {
			h.Anchors[i] = float64(i*256 + 128)
		}
		accumulate(r, h, bucket16)
		return h
	}

	for i := range h.Anchors {
		h.Anchors[i] = float64(i)
	}
	accumulate(r, h, bucket8)
	return h
}

// bucket8 counts every sample byte of one row into counts.
func bucket8(row []byte, counts *[Buckets]uint64) {
	for _, v := range row {
		counts[v]++
	}
}

// bucket16 counts every little-endian 16-bit sample of one row into counts.
// Bucket width is 256, so the bucket index is the high byte.
func bucket16(row []byte, counts *[Buckets]uint64) {
	for x := 0; x < len(row); x += 2 {
		v := binary.LittleEndian.Uint16(row[x:])
		counts[v>>8]++
	}
}

// accumulate fans rows out over the worker pool, counting each chunk into a
// local histogram and merging under a lock. Addition commutes, so the merged
// counts equal the serial result.
func accumulate(r *raster.Raster, h *Histogram, count func([]byte, *[Buckets]uint64)) {
	var mu sync.Mutex

	parallel.Rows(r.Height(), func(lo, hi int) {
		var local [Buckets]uint64
		for y := lo; y < hi; y++ {
			count(r.Row(y), &local)
		}

		mu.Lock()
		for i, c := range local {
			if c != 0 {
				h.Counts[i] += c
			}
		}
		mu.Unlock()
	})
}

// Total returns the number of pooled samples, i.e. the sum of all counts.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Cumulative returns the running sum of the counts:
// result[i] is the number of samples in buckets 0..i.
func (h *Histogram) Cumulative() [Buckets]uint64 {
	var cum [Buckets]uint64
	var sum uint64
	for i, c := range h.Counts {
		sum += c
		cum[i] = sum
	}
	return cum
}

// BucketWidth returns the native-unit width of one bucket for the given
// depth: 1 for 8-bit sources, 256 for 16-bit.
func BucketWidth(d raster.Depth) float64 {
	return (d.Max + 1) / Buckets
}
