// Package truevision decodes Truevision TGA images, including
// palette-indexed and run-length compressed variants. Recognition keys
// on the optional footer signature; headerless legacy files without it
// must be decoded through their registry tag directly.
package truevision

import (
	"bytes"
	"fmt"

	"github.com/arcunpack/go-arcpix/codec"
	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/pix"
	"github.com/arcunpack/go-arcpix/stream"
)

var footerMagic = []byte("TRUEVISION-XFILE.\x00")

// Image descriptor flag bits.
const (
	flagRightToLeft = 0x10
	flagTopToBottom = 0x20
	flagInterleave2 = 0x40
	flagInterleave4 = 0x80
)

// TGADecoder decodes Truevision TGA images.
type TGADecoder struct{}

// NewTGADecoder creates a TGA decoder.
func NewTGADecoder() *TGADecoder {
	return &TGADecoder{}
}

// IsRecognized reports whether the stream ends with the TGA footer
// signature.
func (*TGADecoder) IsRecognized(r *stream.Reader) bool {
	if r.Size() < len(footerMagic) {
		return false
	}
	if err := r.Seek(r.Size() - len(footerMagic)); err != nil {
		return false
	}
	b, err := r.Read(len(footerMagic))
	return err == nil && bytes.Equal(b, footerMagic)
}

// Decode parses the TGA header and pixel data into a grid.
func (*TGADecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	idSize, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	paletteFlag, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	usePalette := paletteFlag == 1
	dataType, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	paletteStart, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	paletteEnd, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	paletteDepth, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := r.Skip(4); err != nil { // x and y origin
		return nil, err
	}
	width, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	height, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	depth, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	flags, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	channels := int(depth) / 8
	flipHorizontally := flags&flagRightToLeft != 0
	flipVertically := flags&flagTopToBottom == 0
	compressed := dataType&8 != 0

	if err := r.Skip(int(idSize)); err != nil {
		return nil, err
	}

	var palette *pix.Palette
	if usePalette {
		paletteSize := int(paletteEnd) - int(paletteStart)
		palette, err = pix.ReadPalette(r, paletteSize, int(paletteDepth))
		if err != nil {
			return nil, fmt.Errorf("read palette: %w", err)
		}
	}

	var data []byte
	if compressed {
		data, err = codec.DecompressRLE(r, int(width), int(height), channels)
	} else {
		data, err = r.Read(int(width) * int(height) * channels)
	}
	if err != nil {
		return nil, fmt.Errorf("read pixel data: %w", err)
	}

	var grid *pix.Grid
	if usePalette {
		grid, err = pix.NewGridFromPaletteBytesDepth(int(width), int(height), data, palette, int(depth))
	} else {
		grid, err = gridFromFormat(int(width), int(height), data, int(depth))
	}
	if err != nil {
		return nil, err
	}

	if flipVertically {
		grid.FlipVertically()
	}
	if flipHorizontally {
		grid.FlipHorizontally()
	}
	// 16- and 32-bit TGA store alpha complemented.
	if depth == 16 || depth == 32 {
		grid.InvertAlpha()
	}
	return &decoder.Result{Image: grid}, nil
}

func gridFromFormat(width, height int, data []byte, depth int) (*pix.Grid, error) {
	var format pix.Format
	switch depth {
	case 8:
		format = pix.Gray8
	case 16:
		format = pix.BGRA5551
	case 24:
		format = pix.BGR888
	case 32:
		format = pix.BGRA8888
	default:
		return nil, pix.UnsupportedBitDepthError{Depth: depth}
	}
	return pix.NewGridFromBytes(width, height, data, format)
}
