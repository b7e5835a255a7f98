package pix

import (
	"fmt"

	"github.com/arcunpack/go-arcpix/stream"
)

// Palette is an ordered index-to-color lookup table. It is built once by
// a decoder and immutable thereafter.
type Palette struct {
	colors []Pixel
}

// NewPalette builds a palette of count entries from raw bytes laid out
// under the given format. len(data) must equal count*f.BytesPerPixel().
func NewPalette(count int, data []byte, f Format) (*Palette, error) {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("palette format %s: %w", f, ErrSizeMismatch)
	}
	if len(data) != count*bpp {
		return nil, fmt.Errorf("palette of %d %s entries from %d bytes: %w",
			count, f, len(data), ErrSizeMismatch)
	}
	colors := make([]Pixel, count)
	for i := range colors {
		colors[i] = f.decodePixel(data[i*bpp : (i+1)*bpp])
	}
	return &Palette{colors: colors}, nil
}

// ReadPalette reads count palette entries of the byte width implied by
// depth: 32-bit entries are BGRA8888, 24-bit are BGR888, and 16- or
// 15-bit are a 5-5-5 layout with synthesized opaque alpha. Any other
// depth fails with UnsupportedBitDepthError.
func ReadPalette(r *stream.Reader, count, depth int) (*Palette, error) {
	var f Format
	switch depth {
	case 32:
		f = BGRA8888
	case 24:
		f = BGR888
	case 16, 15:
		f = BGR555X
	default:
		return nil, UnsupportedBitDepthError{Depth: depth}
	}
	data, err := r.Read(count * f.BytesPerPixel())
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	return NewPalette(count, data, f)
}

// Size returns the number of entries.
func (p *Palette) Size() int {
	return len(p.colors)
}

// At returns the color at index i. Indices originate from bounded
// bit-width reads; an index outside [0, Size) is a bug in the caller.
func (p *Palette) At(i int) Pixel {
	return p.colors[i]
}
