package filter

import "github.com/gogpu/rgbproc"

// Kernel is a 3x3 integer convolution kernel indexed [row][col], aligned
// with rgbproc.Window.
type Kernel [3][3]int

// LowPassKernel is the binomial smoothing kernel. Its weights sum to
// LowPassDivisor.
var LowPassKernel = Kernel{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// HighPassKernel is the vertical second difference: -top + 2*mid - bottom
// on the center column. Horizontal neighbors carry no weight.
var HighPassKernel = Kernel{
	{0, -1, 0},
	{0, 2, 0},
	{0, -1, 0},
}

// Normalization constants.
const (
	// LowPassDivisor is the sum of the LowPassKernel weights.
	LowPassDivisor = 16

	// HighPassOffset shifts the high-pass response, [-510, 510] for 8-bit
	// input, to be non-negative.
	HighPassOffset = 510

	// HighPassDivisor scales the shifted response into [0, 255].
	HighPassDivisor = 4
)

// Apply returns the weighted sum of channel c of w.
func (k *Kernel) Apply(w rgbproc.Window, c int) int {
	sum := 0
	for row := range 3 {
		for col := range 3 {
			sum += k[row][col] * w[row][col][c]
		}
	}
	return sum
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() int {
	sum := 0
	for row := range 3 {
		for col := range 3 {
			sum += k[row][col]
		}
	}
	return sum
}

// NewLowPass returns the smoothing filter over the 3x3 window of src.
func NewLowPass(src rgbproc.WindowSource) Filter {
	return &windowFilter{name: "LowPassFilter", src: src, fn: LowPass}
}

// LowPass convolves each channel with LowPassKernel and divides by
// LowPassDivisor, truncating toward zero.
func LowPass(w rgbproc.Window) rgbproc.Pixel {
	var out rgbproc.Pixel
	for c := range rgbproc.Channels {
		out[c] = LowPassKernel.Apply(w, c) / LowPassDivisor
	}
	return out
}

// NewHighPass returns the vertical edge filter over the 3x3 window of src.
func NewHighPass(src rgbproc.WindowSource) Filter {
	return &windowFilter{name: "HighPassFilter", src: src, fn: HighPass}
}

// HighPass convolves each channel with HighPassKernel and maps the result
// r to (r + HighPassOffset) / HighPassDivisor using integer division
// truncating toward zero. A flat region yields 510/4 = 127.
func HighPass(w rgbproc.Window) rgbproc.Pixel {
	var out rgbproc.Pixel
	for c := range rgbproc.Channels {
		out[c] = (HighPassKernel.Apply(w, c) + HighPassOffset) / HighPassDivisor
	}
	return out
}
