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

package filter

import "fmt"

// ChromaUpsample converts a planar image into a packed BGR buffer. The
// input holds two signed quarter-resolution chroma planes (Cb then Cr)
// followed by the full-resolution unsigned luma plane, packed
// contiguously. Each 2x2 luma block shares one chroma sample pair:
//
//	B = (luma<<7 + 226*Cb) >> 7
//	G = (luma<<7 -  43*Cb - 89*Cr) >> 7
//	R = (luma<<7 + 179*Cr) >> 7
//
// each clamped to [0, 255]. Width and height must be even.
func ChromaUpsample(input []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("chroma upsample of %dx%d image: %w", width, height, ErrSizeMismatch)
	}
	blockSize := width * height / 4
	if len(input) < 2*blockSize+width*height {
		return nil, fmt.Errorf("%d plane bytes for %dx%d: %w", len(input), width, height, ErrSizeMismatch)
	}
	cb := input[0:blockSize]
	cr := input[blockSize : 2*blockSize]
	luma := input[2*blockSize : 2*blockSize+width*height]

	stride := width * 3
	out := make([]byte, height*stride)
	// Offsets of the four luma samples sharing one chroma pair.
	offsets := [4]int{0, 1, width, width + 1}

	ci, li, oi := 0, 0, 0
	for y := 0; y < height/2; y++ {
		for x := 0; x < width/2; x++ {
			valueB := 226 * int(int8(cb[ci]))
			valueG := -43*int(int8(cb[ci])) - 89*int(int8(cr[ci]))
			valueR := 179 * int(int8(cr[ci]))

			for _, off := range offsets {
				base := int(luma[li+off]) << 7
				out[oi+3*off+0] = clamp((base + valueB) >> 7)
				out[oi+3*off+1] = clamp((base + valueG) >> 7)
				out[oi+3*off+2] = clamp((base + valueR) >> 7)
			}

			ci++
			li += 2
			oi += 6
		}
		li += width
		oi += stride
	}
	return out, nil
}

// clamp bounds a reconstructed channel to the 8-bit range.
func clamp(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
