// Package rgbproc is a golden model for a streaming 3x3 image filter
// pipeline.
//
// # Overview
//
// Hardware image pipelines usually see a frame as a flat, row-major stream of
// RGB pixels and keep only three lines in memory. rgbproc reproduces that
// structure in software so that its output can be compared against the
// hardware bit for bit.
//
//	PixelSource -> WindowStream -> filter -> output pixel stream
//
// # Quick Start
//
//	src := pixelio.NewReader(os.Stdin)
//	ws, err := rgbproc.NewWindowStream(rgbproc.Resolution{Width: 640, Height: 480}, src)
//	if err != nil {
//	    return err
//	}
//	out := pixelio.NewWriter(os.Stdout)
//	n, err := filter.Run(filter.NewMedian(ws), out.WritePixel)
//
// # Windows
//
// WindowStream emits one 3x3 [Window] per source pixel, in the order the
// pixels arrived. The window center is always the source pixel; rows and
// columns outside the frame are replaced by the nearest edge row or column,
// so corner windows replicate in both directions. Reading Window.Center()
// for every window reproduces the input exactly.
//
// # End of stream
//
// There is no "has more" query. Streams and filters return [ErrEndOfStream]
// once the frame is complete or the source runs dry, and every driver loop
// treats it as normal termination. Any other error (for example a malformed
// input line) is fatal.
//
// # Values
//
// Channel values are plain ints and are never clamped. Filters use integer
// arithmetic with truncating division.
package rgbproc

// Version is the current version of the library.
const Version = "0.1.0"
