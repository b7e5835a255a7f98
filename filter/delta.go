// Copyright (c) 2026 The go-arcpix Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-arcpix.
//
// go-arcpix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-arcpix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-arcpix.  If not, see <https://www.gnu.org/licenses/>.

// Package filter reconstructs pixel bytes after decompression: a planar
// chroma-to-packed-BGR upsampler and the per-row predictive delta
// filters used by the delta-filtered block layout.
package filter

import (
	"errors"
	"fmt"

	"github.com/arcunpack/go-arcpix/stream"
)

// ErrSizeMismatch indicates a declared and actual buffer length
// disagree: a selector array not covering every row, or a payload
// shorter than width*height*channels.
var ErrSizeMismatch = errors.New("size mismatch")

// UnknownDeltaFilterError is returned for a row selector byte outside
// the known set {1, 2, 4}.
type UnknownDeltaFilterError struct {
	Code byte
}

func (e UnknownDeltaFilterError) Error() string {
	return fmt.Sprintf("unknown delta filter code: %d", e.Code)
}

// Row filter selector codes.
const (
	// DeltaHorizontal predicts each byte from the previous channel group
	// in the same row.
	DeltaHorizontal byte = 1

	// DeltaVertical predicts each byte from the row above; row 0 is
	// predicted from a virtual all-zero row.
	DeltaVertical byte = 2

	// DeltaAverage predicts each byte from the integer mean of the byte
	// above and the previous channel group.
	DeltaAverage byte = 4
)

// DeltaLines reconstructs a delta-filtered buffer of height rows of
// width*channels bytes, given one selector byte per row. Each stored
// byte holds prediction minus value; reconstruction computes prediction
// minus stored byte with uint8 wraparound. The input is not modified.
func DeltaLines(selectors, data []byte, width, height, channels int) ([]byte, error) {
	stride := width * channels
	if len(selectors) != height {
		return nil, fmt.Errorf("%d selectors for %d rows: %w", len(selectors), height, ErrSizeMismatch)
	}
	if len(data) < width*height*channels {
		return nil, fmt.Errorf("%d payload bytes for %dx%dx%d: %w",
			len(data), width, height, channels, ErrSizeMismatch)
	}

	out := make([]byte, len(data))
	copy(out, data)
	for y := 0; y < height; y++ {
		row := out[y*stride : (y+1)*stride]
		var above []byte
		if y > 0 {
			above = out[(y-1)*stride : y*stride]
		}

		switch selectors[y] {
		case DeltaHorizontal:
			for x := channels; x < stride; x++ {
				row[x] = row[x-channels] - row[x]
			}
		case DeltaVertical:
			for x := 0; x < stride; x++ {
				row[x] = rowAbove(above, x) - row[x]
			}
		case DeltaAverage:
			for x := channels; x < stride; x++ {
				mean := (int(rowAbove(above, x)) + int(row[x-channels])) / 2
				row[x] = byte(mean) - row[x]
			}
		default:
			return nil, UnknownDeltaFilterError{Code: selectors[y]}
		}
	}
	return out, nil
}

// rowAbove reads the reconstructed byte from the row above, treating the
// row preceding row 0 as all zeros.
func rowAbove(above []byte, x int) byte {
	if above == nil {
		return 0
	}
	return above[x]
}

// DeltaBlock is the parsed layout of a delta-filtered block: a 2-byte
// skip, a little-endian depth, the declared width and height, one
// selector byte per row, and the filtered payload.
type DeltaBlock struct {
	Depth     int
	Selectors []byte
	Payload   []byte
}

// ParseDeltaBlock reads a delta-filtered block from the stream and
// checks its embedded extent against the declared one.
func ParseDeltaBlock(r *stream.Reader, width, height int) (*DeltaBlock, error) {
	if err := r.Skip(2); err != nil {
		return nil, fmt.Errorf("skip delta block header: %w", err)
	}
	depth, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read delta block depth: %w", err)
	}
	blockWidth, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read delta block width: %w", err)
	}
	blockHeight, err := r.ReadU16LE()
	if err != nil {
		return nil, fmt.Errorf("read delta block height: %w", err)
	}
	if int(blockWidth) != width || int(blockHeight) != height {
		return nil, fmt.Errorf("delta block extent %dx%d, declared %dx%d: %w",
			blockWidth, blockHeight, width, height, ErrSizeMismatch)
	}
	selectors, err := r.Read(height)
	if err != nil {
		return nil, fmt.Errorf("read delta selectors: %w", err)
	}
	return &DeltaBlock{
		Depth:     int(depth),
		Selectors: selectors,
		Payload:   r.ReadToEOF(),
	}, nil
}
