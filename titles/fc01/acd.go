// Package fc01 decodes the ACD grayscale image format used by F&C Co.
// titles: a back-reference compressed payload holding a bit-level
// encoding of luminance values.
package fc01

import (
	"bytes"
	"fmt"

	"github.com/arcunpack/go-arcpix/bitstream"
	"github.com/arcunpack/go-arcpix/codec"
	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/pix"
	"github.com/arcunpack/go-arcpix/stream"
)

var acdMagic = []byte("ACD 1.00")

// ACDDecoder decodes FC01 ACD images.
type ACDDecoder struct{}

// NewACDDecoder creates an ACD decoder.
func NewACDDecoder() *ACDDecoder {
	return &ACDDecoder{}
}

// IsRecognized reports whether the stream starts with the ACD magic.
func (*ACDDecoder) IsRecognized(r *stream.Reader) bool {
	b, err := r.Read(len(acdMagic))
	return err == nil && bytes.Equal(b, acdMagic)
}

// Decode reads the ACD header, expands the compressed payload and
// decodes the bit-level luminance stream into a grayscale grid.
func (*ACDDecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(len(acdMagic)); err != nil {
		return nil, err
	}
	dataOffset, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read data offset: %w", err)
	}
	sizeComp, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read compressed size: %w", err)
	}
	sizeOrig, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read decompressed size: %w", err)
	}
	width, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	height, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}

	if err := r.Seek(int(dataOffset)); err != nil {
		return nil, fmt.Errorf("seek to pixel data: %w", err)
	}
	compressed, err := r.Read(int(sizeComp))
	if err != nil {
		return nil, fmt.Errorf("read compressed data: %w", err)
	}
	data, err := codec.DecompressBackref(compressed, int(sizeOrig))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	luma, err := decodeLuma(data, int(width)*int(height))
	if err != nil {
		return nil, fmt.Errorf("decode luminance stream: %w", err)
	}

	grid, err := pix.NewGridFromBytes(int(width), int(height), luma, pix.Gray8)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Image: grid}, nil
}

// decodeLuma expands the bit-level luminance encoding into canvasSize
// bytes. A 0 bit encodes zero; "11" encodes 0xFF; "10" starts a
// variable-length value terminated by its own overflow bit, which is
// then scaled into the 8-bit range. The scaling multiply wraps at 32
// bits like the original arithmetic.
func decodeLuma(input []byte, canvasSize int) ([]byte, error) {
	br := bitstream.New(input)
	out := make([]byte, canvasSize)
	for i := range out {
		bit, err := br.Get(1)
		if err != nil {
			return nil, err
		}
		v := 0
		if bit != 0 {
			v--
			bit, err = br.Get(1)
			if err != nil {
				return nil, err
			}
			if bit == 0 {
				v += 3
				for done := uint32(0); done == 0; {
					bit, err = br.Get(1)
					if err != nil {
						return nil, err
					}
					v = v<<1 | int(bit)
					done = uint32(v) >> 8 & 1
					v &= 0xFF
				}
				if v != 0 {
					scaled := int32(uint32(v+1)*0x28CCCCD) >> 24
					v = int(scaled)
				}
			}
		}
		out[i] = byte(v)
	}
	return out, nil
}
