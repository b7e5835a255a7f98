// Package pix holds the common in-memory pixel representation shared by
// every format decoder: a four-channel Pixel value, the closed set of
// byte-layout Formats, index-to-color Palettes, and the Grid of decoded
// pixels that a decode call produces.
package pix

// Pixel is one decoded color value with four 8-bit channels.
type Pixel struct {
	B uint8
	G uint8
	R uint8
	A uint8
}

// Luminance returns the gray value of the pixel. Mask images decoded as
// Gray8 store the same value in all three color channels.
func (p Pixel) Luminance() uint8 {
	return uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
}
