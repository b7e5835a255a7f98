// Package amusecraft decodes the PGD image format used by Amuse Craft
// titles: a back-reference compressed payload followed by one of two
// reconstruction filters.
package amusecraft

import (
	"bytes"
	"fmt"

	"github.com/arcunpack/go-arcpix/codec"
	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/filter"
	"github.com/arcunpack/go-arcpix/pix"
	"github.com/arcunpack/go-arcpix/stream"
)

var pgdMagic = []byte{'G', 'E', 0x20, 0x00}

// Filter type codes stored in the PGD header.
const (
	pgdFilterChroma = 2
	pgdFilterDelta  = 3
)

// PGDDecoder decodes Amuse Craft PGD images.
type PGDDecoder struct{}

// NewPGDDecoder creates a PGD decoder.
func NewPGDDecoder() *PGDDecoder {
	return &PGDDecoder{}
}

// IsRecognized reports whether the stream starts with the PGD magic.
func (*PGDDecoder) IsRecognized(r *stream.Reader) bool {
	b, err := r.Read(len(pgdMagic))
	return err == nil && bytes.Equal(b, pgdMagic)
}

// Decode reads the PGD header, expands the back-reference compressed
// payload and applies the header-selected reconstruction filter.
func (*PGDDecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(len(pgdMagic)); err != nil {
		return nil, err
	}
	if err := r.Skip(8); err != nil {
		return nil, err
	}
	width, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	height, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	if err := r.Skip(8); err != nil {
		return nil, err
	}
	filterType, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read filter type: %w", err)
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	sizeOrig, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read decompressed size: %w", err)
	}
	sizeComp, err := r.ReadU32LE()
	if err != nil {
		return nil, fmt.Errorf("read compressed size: %w", err)
	}
	compressed, err := r.Read(int(sizeComp))
	if err != nil {
		return nil, fmt.Errorf("read compressed data: %w", err)
	}
	data, err := codec.DecompressBackref(compressed, int(sizeOrig))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	switch filterType {
	case pgdFilterChroma:
		return decodeChroma(data, int(width), int(height))
	case pgdFilterDelta:
		return decodeDelta(data, int(width), int(height))
	default:
		return nil, fmt.Errorf("unknown PGD filter type: %d", filterType)
	}
}

func decodeChroma(data []byte, width, height int) (*decoder.Result, error) {
	bgr, err := filter.ChromaUpsample(data, width, height)
	if err != nil {
		return nil, err
	}
	grid, err := pix.NewGridFromBytes(width, height, bgr, pix.BGR888)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Image: grid}, nil
}

func decodeDelta(data []byte, width, height int) (*decoder.Result, error) {
	block, err := filter.ParseDeltaBlock(stream.New(data), width, height)
	if err != nil {
		return nil, err
	}
	channels := block.Depth >> 3
	raw, err := filter.DeltaLines(block.Selectors, block.Payload, width, height, channels)
	if err != nil {
		return nil, err
	}

	var format pix.Format
	switch channels {
	case 4:
		format = pix.BGRA8888
	case 3:
		format = pix.BGR888
	default:
		return nil, pix.UnsupportedBitDepthError{Depth: block.Depth}
	}
	grid, err := pix.NewGridFromBytes(width, height, raw[:width*height*channels], format)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Image: grid}, nil
}
