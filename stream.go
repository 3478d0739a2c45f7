package rgbproc

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// PixelSource supplies pixels one at a time in row-major order.
// NextPixel returns io.EOF once the source is exhausted; any other error
// is fatal to the stream.
type PixelSource interface {
	NextPixel() (Pixel, error)
}

// Rewinder is implemented by sources that can restart from the beginning.
type Rewinder interface {
	Rewind() error
}

// WindowSource supplies 3x3 windows in row-major pixel order.
type WindowSource interface {
	NextWindow() (Window, error)
}

// Buffer row handles.
const (
	top = iota
	mid
	bot
)

// WindowStream turns a row-major PixelSource into a stream of 3x3 windows,
// one per source pixel, replicating edge rows and columns so that every
// window is full and centered on the pixel the source produced at that
// position.
//
// Three source rows are buffered at a time. The buffers are allocated once
// with capacity Width and rotated through the top/mid/bot handles; a
// replicated row is two handles pointing at the same buffer.
//
// WindowStream is not safe for concurrent use.
type WindowStream struct {
	res  Resolution
	src  PixelSource
	opts streamOptions

	buf  [3][]Pixel
	slot [3]int // top, mid, bot -> index into buf

	ready bool // buffer has been preloaded
	eof   bool // source returned io.EOF
	last  int  // frame index of the last row read from the source
	px    int  // column of the next window
	ln    int  // row of the next window
	err   error
}

// NewWindowStream creates a stream over src for frames of size res.
// The source is not read until the first window is requested.
func NewWindowStream(res Resolution, src PixelSource, opts ...StreamOption) (*WindowStream, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("rgbproc: nil pixel source")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &WindowStream{res: res, src: src, opts: o}
	for i := range s.buf {
		s.buf[i] = make([]Pixel, 0, res.Width)
	}
	return s, nil
}

// Resolution returns the frame size of the stream.
func (s *WindowStream) Resolution() Resolution {
	return s.res
}

// Reset rewinds the source and clears the row buffer so the next call
// starts again at pixel (0, 0). If the source does not implement Rewinder
// Reset returns ErrResetUnsupported and the stream is left as it was.
func (s *WindowStream) Reset() error {
	rw, ok := s.src.(Rewinder)
	if !ok {
		return ErrResetUnsupported
	}
	if err := rw.Rewind(); err != nil {
		return fmt.Errorf("rgbproc: reset: %w", err)
	}

	for i := range s.buf {
		s.buf[i] = s.buf[i][:0]
	}
	s.ready, s.eof, s.err = false, false, nil
	s.last, s.px, s.ln = 0, 0, 0

	Logger().Debug("rgbproc: stream reset", "resolution", s.res)
	return nil
}

// NextWindow returns the window centered on the next source pixel.
//
// Columns are replicated at the left and right edges: column 0 yields
// (c0, c0, c1) and column Width-1 yields (c[w-2], c[w-1], c[w-1]). Rows are
// replicated at the top and bottom the same way. When the frame is complete
// or the source is exhausted NextWindow returns ErrEndOfStream.
func (s *WindowStream) NextWindow() (Window, error) {
	if err := s.advance(); err != nil {
		return Window{}, err
	}

	var w Window
	for r := range 3 {
		row := s.buf[s.slot[r]]
		for c := range 3 {
			w[r][c] = row[clampColumn(s.px-1+c, len(row))]
		}
	}
	s.px++
	return w, nil
}

// NextPixel advances exactly like NextWindow but returns only the center
// pixel, without assembling the neighborhood.
func (s *WindowStream) NextPixel() (Pixel, error) {
	if err := s.advance(); err != nil {
		return Pixel{}, err
	}
	p := s.buf[s.slot[mid]][s.px]
	s.px++
	return p, nil
}

// Windows returns an iterator over the remaining windows. Iteration stops
// silently at end of stream; a source failure is yielded once as the
// final element.
func (s *WindowStream) Windows() iter.Seq2[Window, error] {
	return func(yield func(Window, error) bool) {
		for {
			w, err := s.NextWindow()
			if errors.Is(err, ErrEndOfStream) {
				return
			}
			if !yield(w, err) || err != nil {
				return
			}
		}
	}
}

// advance positions the stream on the next pixel, loading rows as needed.
func (s *WindowStream) advance() error {
	if s.err != nil {
		return s.err
	}
	if !s.ready {
		return s.preload()
	}
	if s.px < len(s.buf[s.slot[mid]]) {
		return nil
	}

	// The current row is complete.
	s.ln++
	if s.opts.progress != nil {
		s.opts.progress(s.ln)
	}
	if s.ln >= s.res.Height || s.ln > s.last {
		return s.finish()
	}

	s.slot[top], s.slot[mid] = s.slot[mid], s.slot[bot]
	s.px = 0

	if s.ln == s.res.Height-1 || s.eof {
		s.slot[bot] = s.slot[mid]
		return nil
	}

	i := s.freeSlot()
	n, err := s.fill(i)
	if err != nil {
		return s.fail(err)
	}
	if n == 0 {
		s.slot[bot] = s.slot[mid]
		return nil
	}
	s.last++
	s.slot[bot] = i
	return nil
}

// preload reads the first two rows and seeds the buffer as
// (row0, row0, row1). A single-row frame is seeded (row0, row0, row0).
func (s *WindowStream) preload() error {
	n, err := s.fill(0)
	if err != nil {
		return s.fail(err)
	}
	if n == 0 {
		return s.finish()
	}
	s.slot = [3]int{0, 0, 0}
	s.last = 0

	if s.res.Height > 1 && !s.eof {
		n, err := s.fill(1)
		if err != nil {
			return s.fail(err)
		}
		if n > 0 {
			s.last = 1
			s.slot[bot] = 1
		}
	}

	s.ready = true
	Logger().Debug("rgbproc: stream preloaded", "resolution", s.res, "rows", s.last+1)
	return nil
}

// fill reads up to Width pixels into buf[i] and returns how many were read.
func (s *WindowStream) fill(i int) (int, error) {
	row := s.buf[i][:0]
	for len(row) < s.res.Width {
		p, err := s.src.NextPixel()
		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("rgbproc: read row: %w", err)
		}
		row = append(row, p)
	}
	s.buf[i] = row
	return len(row), nil
}

// freeSlot returns a buffer index not referenced by the top or mid handle.
func (s *WindowStream) freeSlot() int {
	for i := range s.buf {
		if i != s.slot[top] && i != s.slot[mid] {
			return i
		}
	}
	panic("rgbproc: no free row buffer")
}

func (s *WindowStream) finish() error {
	if s.ready && s.ln < s.res.Height {
		Logger().Warn("rgbproc: source ended before frame was complete",
			"resolution", s.res, "rows", s.ln)
	}
	Logger().Debug("rgbproc: end of stream", "rows", s.ln)
	s.err = ErrEndOfStream
	return s.err
}

func (s *WindowStream) fail(err error) error {
	s.err = err
	return err
}

// clampColumn maps a column index into [0, n), replicating the edge
// columns of a row of length n.
func clampColumn(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}
