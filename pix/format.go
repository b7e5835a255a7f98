package pix

import "fmt"

// Format names a fixed byte layout for one pixel. Every Format consumes
// exactly BytesPerPixel bytes and produces exactly one Pixel.
type Format int

// Supported pixel byte layouts.
const (
	// Gray8 is one luminance byte, replicated into all color channels.
	Gray8 Format = iota

	// BGR888 is three bytes in blue, green, red order, opaque alpha.
	BGR888

	// RGB888 is three bytes in red, green, blue order, opaque alpha.
	RGB888

	// BGRA8888 is four bytes in blue, green, red, alpha order.
	BGRA8888

	// BGRA5551 is a little-endian uint16 with five bits per color channel
	// and the alpha flag in the top bit.
	BGRA5551

	// BGR555X is a little-endian uint16 with five bits per color channel;
	// the top bit is ignored and alpha is synthesized opaque.
	BGR555X
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Gray8:
		return "Gray8"
	case BGR888:
		return "BGR888"
	case RGB888:
		return "RGB888"
	case BGRA8888:
		return "BGRA8888"
	case BGRA5551:
		return "BGRA5551"
	case BGR555X:
		return "BGR555X"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BytesPerPixel returns the number of bytes one pixel occupies.
func (f Format) BytesPerPixel() int {
	switch f {
	case Gray8:
		return 1
	case BGR888, RGB888:
		return 3
	case BGRA8888:
		return 4
	case BGRA5551, BGR555X:
		return 2
	default:
		return 0
	}
}

// DecodePixel converts exactly one pixel's worth of bytes into a Pixel.
// len(b) must equal f.BytesPerPixel().
func (f Format) DecodePixel(b []byte) (Pixel, error) {
	if len(b) != f.BytesPerPixel() || f.BytesPerPixel() == 0 {
		return Pixel{}, fmt.Errorf("decode %s pixel from %d bytes: %w", f, len(b), ErrSizeMismatch)
	}
	return f.decodePixel(b), nil
}

// decodePixel is the unchecked fast path used by Grid and Palette after
// they have validated the buffer length once.
func (f Format) decodePixel(b []byte) Pixel {
	switch f {
	case Gray8:
		return Pixel{B: b[0], G: b[0], R: b[0], A: 0xFF}
	case BGR888:
		return Pixel{B: b[0], G: b[1], R: b[2], A: 0xFF}
	case RGB888:
		return Pixel{R: b[0], G: b[1], B: b[2], A: 0xFF}
	case BGRA8888:
		return Pixel{B: b[0], G: b[1], R: b[2], A: b[3]}
	case BGRA5551:
		v := uint16(b[0]) | uint16(b[1])<<8
		p := Pixel{
			B: scale5(uint8(v & 0x1F)),
			G: scale5(uint8(v >> 5 & 0x1F)),
			R: scale5(uint8(v >> 10 & 0x1F)),
		}
		if v&0x8000 != 0 {
			p.A = 0xFF
		}
		return p
	case BGR555X:
		v := uint16(b[0]) | uint16(b[1])<<8
		return Pixel{
			B: scale5(uint8(v & 0x1F)),
			G: scale5(uint8(v >> 5 & 0x1F)),
			R: scale5(uint8(v >> 10 & 0x1F)),
			A: 0xFF,
		}
	default:
		return Pixel{}
	}
}

// scale5 expands a 5-bit channel to 8 bits, replicating the high bits so
// that full intensity maps to 0xFF.
func scale5(v uint8) uint8 {
	return v<<3 | v>>2
}
