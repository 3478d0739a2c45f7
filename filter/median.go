package filter

import (
	"slices"

	"github.com/gogpu/rgbproc"
)

// MedianRank is the 0-based index selected from the nine sorted channel
// values. It is 5, not the textbook median index 4; the hardware under test
// is validated against this rank.
const MedianRank = 5

// NewMedian returns the rank filter over the 3x3 window of src.
func NewMedian(src rgbproc.WindowSource) Filter {
	return &windowFilter{name: "MedianFilter", src: src, fn: Median}
}

// Median selects, independently for each channel, the value at MedianRank
// among the nine window values sorted ascending. The three output channels
// may come from different window positions.
func Median(w rgbproc.Window) rgbproc.Pixel {
	var out rgbproc.Pixel
	for c := range rgbproc.Channels {
		out[c] = rank(w.Channel(c), MedianRank)
	}
	return out
}

func rank(v [9]int, k int) int {
	slices.Sort(v[:])
	return v[k]
}
