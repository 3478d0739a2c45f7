package rgbproc

import (
	"fmt"
	"strconv"
)

// Channels is the number of color channels in a Pixel.
const Channels = 3

// Pixel is an RGB triple. Channel values are not clamped: sources may
// supply any non-negative integer and filters may produce values outside
// 0-255.
type Pixel [Channels]int

// RGB returns the pixel (r, g, b).
func RGB(r, g, b int) Pixel {
	return Pixel{r, g, b}
}

// Gray returns a pixel with all three channels set to v.
func Gray(v int) Pixel {
	return Pixel{v, v, v}
}

// R returns the red channel.
func (p Pixel) R() int { return p[0] }

// G returns the green channel.
func (p Pixel) G() int { return p[1] }

// B returns the blue channel.
func (p Pixel) B() int { return p[2] }

// String formats the pixel the way the text stream does: "R G B".
func (p Pixel) String() string {
	return string(p.AppendText(nil))
}

// AppendText appends "R G B" to b.
func (p Pixel) AppendText(b []byte) []byte {
	b = strconv.AppendInt(b, int64(p[0]), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(p[1]), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(p[2]), 10)
	return b
}

// Resolution is the fixed frame size of a stream.
type Resolution struct {
	Width  int
	Height int
}

// Validate reports ErrInvalidResolution unless both dimensions are positive.
func (r Resolution) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

// Pixels returns Width*Height.
func (r Resolution) Pixels() int {
	return r.Width * r.Height
}

func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}

// Window is a 3x3 neighborhood indexed [row][col]. Window[1][1] is the
// pixel the stream is centered on.
type Window [3][3]Pixel

// Center returns w[1][1].
func (w Window) Center() Pixel {
	return w[1][1]
}

// Channel returns the nine values of channel c in row-major order.
func (w Window) Channel(c int) [9]int {
	var v [9]int
	for row := range 3 {
		for col := range 3 {
			v[row*3+col] = w[row][col][c]
		}
	}
	return v
}
