// Package filter provides the fixed-kernel filters of the rgbproc golden
// model.
//
// This package contains:
//   - Identity (center pixel passthrough)
//   - Median (per-channel rank selection over the 3x3 window)
//   - LowPass (1-2-1 binomial kernel, divided by 16)
//   - HighPass (vertical second difference, offset into the positive range)
//   - GrayScale (luma of the center pixel only)
//
// Each filter pulls exactly one window (or one pixel) from its source per
// output pixel, so the output stream has the same length and order as the
// input stream.
//
// All arithmetic is integer. Divisions truncate toward zero and results are
// not clamped to 0-255.
package filter
