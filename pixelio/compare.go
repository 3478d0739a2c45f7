package pixelio

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/rgbproc"
)

// MaxMismatches is the number of mismatches recorded in a Report. Further
// mismatches are counted but not kept.
const MaxMismatches = 16

// Mismatch is a pixel position where the two streams differ.
type Mismatch struct {
	Index int // 0-based position in the stream
	X, Y  int // frame coordinates of Index
	Want  rgbproc.Pixel
	Got   rgbproc.Pixel
}

func (m Mismatch) String() string {
	return fmt.Sprintf("pixel %d (%d,%d): want %v, got %v", m.Index, m.X, m.Y, m.Want, m.Got)
}

// Report summarizes a comparison of a golden stream with a candidate.
type Report struct {
	WantLen    int // pixels in the golden stream
	GotLen     int // pixels in the candidate stream
	Count      int // total mismatching positions
	Mismatches []Mismatch
}

// OK reports whether both streams have the same length and content.
func (r *Report) OK() bool {
	return r.Count == 0 && r.WantLen == r.GotLen
}

// Compare reads want and got to the end, pixel by pixel, and reports
// where they differ. width maps stream positions to frame coordinates.
// Read errors other than io.EOF abort the comparison.
func Compare(want, got rgbproc.PixelSource, width int) (*Report, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", rgbproc.ErrInvalidResolution, width)
	}

	r := &Report{}
	wantDone, gotDone := false, false
	for !wantDone || !gotDone {
		var a, b rgbproc.Pixel
		var err error
		if !wantDone {
			a, err = want.NextPixel()
			if wantDone, err = atEOF(err); err != nil {
				return r, fmt.Errorf("pixelio: golden stream: %w", err)
			}
		}
		if !gotDone {
			b, err = got.NextPixel()
			if gotDone, err = atEOF(err); err != nil {
				return r, fmt.Errorf("pixelio: candidate stream: %w", err)
			}
		}

		switch {
		case !wantDone && !gotDone:
			i := r.WantLen
			r.WantLen++
			r.GotLen++
			if a != b {
				r.record(Mismatch{Index: i, X: i % width, Y: i / width, Want: a, Got: b})
			}
		case !wantDone:
			r.WantLen++
		case !gotDone:
			r.GotLen++
		}
	}

	rgbproc.Logger().Debug("pixelio: compare done",
		"want", r.WantLen, "got", r.GotLen, "mismatches", r.Count)
	return r, nil
}

func (r *Report) record(m Mismatch) {
	r.Count++
	if len(r.Mismatches) < MaxMismatches {
		r.Mismatches = append(r.Mismatches, m)
	}
}

func atEOF(err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
