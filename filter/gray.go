package filter

import "github.com/gogpu/rgbproc"

// Luma weights in percent.
const (
	LumaR = 30
	LumaG = 59
	LumaB = 11
)

// NewGrayScale returns the grayscale filter. It reads only the current
// pixel of src, never its neighborhood.
func NewGrayScale(src rgbproc.PixelSource) Filter {
	return &pixelFilter{name: "GrayScaleFilter", src: src, fn: Gray}
}

// Luma returns R*30/100 + G*59/100 + B*11/100 with each term truncated
// before summing.
func Luma(p rgbproc.Pixel) int {
	return p.R()*LumaR/100 + p.G()*LumaG/100 + p.B()*LumaB/100
}

// Gray returns the pixel with every channel set to Luma(p).
func Gray(p rgbproc.Pixel) rgbproc.Pixel {
	return rgbproc.Gray(Luma(p))
}
