// Package twilight decodes the TFBM image format used by Twilight
// Frontier titles: a small header followed by a zlib-compressed pixel
// payload with rows padded to a declared stride.
package twilight

import (
	"bytes"
	"fmt"

	"github.com/arcunpack/go-arcpix/codec"
	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/pix"
	"github.com/arcunpack/go-arcpix/stream"
)

var tfbmMagic = []byte("TFBM\x00")

// TFBMDecoder decodes Twilight Frontier TFBM images.
type TFBMDecoder struct{}

// NewTFBMDecoder creates a TFBM decoder.
func NewTFBMDecoder() *TFBMDecoder {
	return &TFBMDecoder{}
}

// IsRecognized reports whether the stream starts with the TFBM magic.
func (*TFBMDecoder) IsRecognized(r *stream.Reader) bool {
	b, err := r.Read(len(tfbmMagic))
	return err == nil && bytes.Equal(b, tfbmMagic)
}

// Decode reads the TFBM header, inflates the pixel payload and unpacks
// it row by row, dropping the per-row stride padding.
func (*TFBMDecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(len(tfbmMagic)); err != nil {
		return nil, err
	}
	depth, err := r.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("read depth: %w", err)
	}
	width, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	height, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	stride, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read stride: %w", err)
	}
	sizeOrig, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read decompressed size: %w", err)
	}

	data, err := codec.Inflate(r.ReadToEOF(), int(sizeOrig))
	if err != nil {
		return nil, fmt.Errorf("inflate pixel data: %w", err)
	}

	var format pix.Format
	switch depth {
	case 8:
		format = pix.Gray8
	case 24:
		format = pix.BGR888
	case 32:
		format = pix.BGRA8888
	default:
		return nil, pix.UnsupportedBitDepthError{Depth: int(depth)}
	}

	channels := format.BytesPerPixel()
	rowBytes := int(width) * channels
	if int(stride) < rowBytes || len(data) < int(stride)*int(height) {
		return nil, fmt.Errorf("stride %d for %d-byte rows in %d-byte payload: %w",
			stride, rowBytes, len(data), pix.ErrSizeMismatch)
	}
	packed := make([]byte, 0, rowBytes*int(height))
	for y := 0; y < int(height); y++ {
		row := data[y*int(stride) : y*int(stride)+rowBytes]
		packed = append(packed, row...)
	}

	grid, err := pix.NewGridFromBytes(int(width), int(height), packed, format)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Image: grid}, nil
}
