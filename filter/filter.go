package filter

import (
	"errors"

	"github.com/gogpu/rgbproc"
)

// Filter produces one output pixel per input pixel of its source.
// Next returns rgbproc.ErrEndOfStream when the source is exhausted.
type Filter interface {
	Name() string
	Next() (rgbproc.Pixel, error)
}

// Mode selects a filter (or the raw window dump) by name.
type Mode string

// Modes accepted by ParseMode.
const (
	ModeIdentity  Mode = "identity"
	ModeMedian    Mode = "median"
	ModeLowPass   Mode = "low-pass"
	ModeHighPass  Mode = "high-pass"
	ModeGray      Mode = "gray"
	ModeGenMatrix Mode = "gen-matrix"
)

// Modes lists the pixel-producing modes in a stable order.
var Modes = []Mode{ModeIdentity, ModeMedian, ModeLowPass, ModeHighPass, ModeGray}

// ParseMode returns the mode named s. Unrecognized names select
// ModeIdentity.
func ParseMode(s string) Mode {
	switch m := Mode(s); m {
	case ModeIdentity, ModeMedian, ModeLowPass, ModeHighPass, ModeGray, ModeGenMatrix:
		return m
	case "":
		return ModeIdentity
	default:
		rgbproc.Logger().Warn("filter: unknown mode, using identity", "mode", s)
		return ModeIdentity
	}
}

// New returns the filter for mode reading from ws. ModeGenMatrix has no
// pixel filter; it and any unknown mode yield Identity.
func New(mode Mode, ws *rgbproc.WindowStream) Filter {
	switch mode {
	case ModeMedian:
		return NewMedian(ws)
	case ModeLowPass:
		return NewLowPass(ws)
	case ModeHighPass:
		return NewHighPass(ws)
	case ModeGray:
		return NewGrayScale(ws)
	default:
		return NewIdentity(ws)
	}
}

// windowFilter applies fn to each window of src.
type windowFilter struct {
	name string
	src  rgbproc.WindowSource
	fn   func(rgbproc.Window) rgbproc.Pixel
}

func (f *windowFilter) Name() string { return f.name }

func (f *windowFilter) Next() (rgbproc.Pixel, error) {
	w, err := f.src.NextWindow()
	if err != nil {
		return rgbproc.Pixel{}, err
	}
	return f.fn(w), nil
}

// pixelFilter applies fn to each center pixel of src. It never asks the
// source for a neighborhood.
type pixelFilter struct {
	name string
	src  rgbproc.PixelSource
	fn   func(rgbproc.Pixel) rgbproc.Pixel
}

func (f *pixelFilter) Name() string { return f.name }

func (f *pixelFilter) Next() (rgbproc.Pixel, error) {
	p, err := f.src.NextPixel()
	if err != nil {
		return rgbproc.Pixel{}, err
	}
	return f.fn(p), nil
}

// Run drives f until end of stream, passing every output pixel to emit.
// It returns the number of pixels emitted. rgbproc.ErrEndOfStream ends the
// loop normally; any other error from f or emit is returned as is.
func Run(f Filter, emit func(rgbproc.Pixel) error) (int, error) {
	return drain(f.Next, emit)
}

// Dump drives src until end of stream, passing every raw window to emit.
// It is the matrix-dump mode used to generate hardware test vectors.
func Dump(src rgbproc.WindowSource, emit func(rgbproc.Window) error) (int, error) {
	return drain(src.NextWindow, emit)
}

func drain[T any](next func() (T, error), emit func(T) error) (int, error) {
	n := 0
	for {
		v, err := next()
		if errors.Is(err, rgbproc.ErrEndOfStream) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := emit(v); err != nil {
			return n, err
		}
		n++
	}
}
