package filter

import (
	"io"
	"testing"

	"github.com/gogpu/rgbproc"
	"github.com/gogpu/rgbproc/pixelio"
)

// Test helper functions shared across filter tests.

// uniformSource is a PixelSource of count copies of p.
type uniformSource struct {
	p     rgbproc.Pixel
	count int
}

func (s *uniformSource) NextPixel() (rgbproc.Pixel, error) {
	if s.count == 0 {
		return rgbproc.Pixel{}, io.EOF
	}
	s.count--
	return s.p, nil
}

// newStream returns a stream over src for a w x h frame.
func newStream(t testing.TB, w, h int, src rgbproc.PixelSource) *rgbproc.WindowStream {
	t.Helper()
	ws, err := rgbproc.NewWindowStream(rgbproc.Resolution{Width: w, Height: h}, src)
	if err != nil {
		t.Fatalf("NewWindowStream(%dx%d) error = %v", w, h, err)
	}
	return ws
}

// newRampStream returns a stream over a w x h ramp image.
func newRampStream(t testing.TB, w, h int) *rgbproc.WindowStream {
	t.Helper()
	return newStream(t, w, h, pixelio.NewRamp(w*h))
}

// collect runs f to completion and returns its output.
func collect(t testing.TB, f Filter) []rgbproc.Pixel {
	t.Helper()
	var out []rgbproc.Pixel
	if _, err := Run(f, func(p rgbproc.Pixel) error {
		out = append(out, p)
		return nil
	}); err != nil {
		t.Fatalf("Run(%s) error = %v", f.Name(), err)
	}
	return out
}

// windowOf builds a window whose channel c at [r][col] is v[c][r*3+col].
func windowOf(r, g, b [9]int) rgbproc.Window {
	var w rgbproc.Window
	for i := range 9 {
		w[i/3][i%3] = rgbproc.RGB(r[i], g[i], b[i])
	}
	return w
}

// grayWindow builds a window with every channel taken from v.
func grayWindow(v [9]int) rgbproc.Window {
	return windowOf(v, v, v)
}

// sliceSource is a PixelSource over a fixed slice.
type sliceSource struct {
	px []rgbproc.Pixel
}

func (s *sliceSource) NextPixel() (rgbproc.Pixel, error) {
	if len(s.px) == 0 {
		return rgbproc.Pixel{}, io.EOF
	}
	p := s.px[0]
	s.px = s.px[1:]
	return p, nil
}

// rampSource returns the pixels (start, start, start) through
// (start+n-1, ...).
func rampSource(start, n int) *sliceSource {
	px := make([]rgbproc.Pixel, n)
	for i := range px {
		px[i] = rgbproc.Gray(start + i)
	}
	return &sliceSource{px: px}
}
