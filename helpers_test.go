package rgbproc

import (
	"errors"
	"io"
)

// Test helper functions shared across rgbproc tests.

// sliceSource is a rewindable PixelSource over a fixed slice.
type sliceSource struct {
	pixels []Pixel
	pos    int
	err    error // returned instead of the pixel at errAt
	errAt  int
	reads  int
}

func (s *sliceSource) NextPixel() (Pixel, error) {
	s.reads++
	if s.err != nil && s.pos == s.errAt {
		return Pixel{}, s.err
	}
	if s.pos >= len(s.pixels) {
		return Pixel{}, io.EOF
	}
	p := s.pixels[s.pos]
	s.pos++
	return p, nil
}

func (s *sliceSource) Rewind() error {
	s.pos = 0
	return nil
}

// onceSource is a single-pass source: it does not implement Rewinder.
type onceSource struct {
	src sliceSource
}

func (s *onceSource) NextPixel() (Pixel, error) {
	return s.src.NextPixel()
}

// rampPixels returns n pixels (i, i, i).
func rampPixels(n int) []Pixel {
	px := make([]Pixel, n)
	for i := range px {
		px[i] = Gray(i)
	}
	return px
}

// nineImage is the 3x3 image with pixels (1,1,1) through (9,9,9).
func nineImage() []Pixel {
	return rampPixels(10)[1:]
}

// drainWindows reads windows until end of stream.
func drainWindows(s *WindowStream) ([]Window, error) {
	var out []Window
	for {
		w, err := s.NextWindow()
		if errors.Is(err, ErrEndOfStream) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, w)
	}
}

// grayWindow builds a window whose pixels are Gray(v[row][col]).
func grayWindow(v [3][3]int) Window {
	var w Window
	for r := range 3 {
		for c := range 3 {
			w[r][c] = Gray(v[r][c])
		}
	}
	return w
}
