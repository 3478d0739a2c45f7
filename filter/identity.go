package filter

import "github.com/gogpu/rgbproc"

// NewIdentity returns a filter that passes every source pixel through
// unchanged. Over a WindowStream it proves the round trip: the output equals
// the stream's input.
func NewIdentity(src rgbproc.PixelSource) Filter {
	return &pixelFilter{
		name: "IdentityFilter",
		src:  src,
		fn:   func(p rgbproc.Pixel) rgbproc.Pixel { return p },
	}
}
