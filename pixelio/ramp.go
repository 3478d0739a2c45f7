package pixelio

import (
	"errors"
	"io"

	"github.com/gogpu/rgbproc"
)

// Ramp is a synthetic, rewindable pixel source producing (i, i, i) for
// i = 0, 1, ..., count-1. Each pixel is distinct, which makes window
// positions easy to trace in test vectors.
type Ramp struct {
	count int
	i     int
}

// NewRamp returns a ramp of count pixels.
func NewRamp(count int) *Ramp {
	return &Ramp{count: count}
}

// NextPixel returns the next ramp value, or io.EOF after count pixels.
func (r *Ramp) NextPixel() (rgbproc.Pixel, error) {
	if r.i >= r.count {
		return rgbproc.Pixel{}, io.EOF
	}
	p := rgbproc.Gray(r.i)
	r.i++
	return p, nil
}

// Rewind restarts the ramp at 0.
func (r *Ramp) Rewind() error {
	r.i = 0
	return nil
}

// Copy writes every pixel of src to w and returns the count.
func Copy(w *Writer, src rgbproc.PixelSource) (int, error) {
	n := 0
	for {
		p, err := src.NextPixel()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := w.WritePixel(p); err != nil {
			return n, err
		}
		n++
	}
}
