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

package codec

import (
	"fmt"

	"github.com/arcunpack/go-arcpix/stream"
)

// DecompressRLE expands a run-length stream into width*height*channels
// bytes. Each packet starts with a control byte whose low seven bits
// plus one give a repetition count; the high bit selects between one
// channels-wide chunk replicated count times and count consecutive
// chunks copied verbatim. Decoding stops exactly when the output is full
// and never overruns it.
func DecompressRLE(r *stream.Reader, width, height, channels int) ([]byte, error) {
	total := width * height * channels
	out := make([]byte, 0, total)

	for len(out) < total {
		control, err := r.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("read RLE control byte: %w", err)
		}
		repetitions := int(control&0x7F) + 1

		if control&0x80 != 0 {
			chunk, err := r.Read(channels)
			if err != nil {
				return nil, fmt.Errorf("read RLE chunk: %w", err)
			}
			for ; repetitions > 0 && len(out) < total; repetitions-- {
				out = appendClamped(out, chunk, total)
			}
		} else {
			for ; repetitions > 0 && len(out) < total; repetitions-- {
				chunk, err := r.Read(channels)
				if err != nil {
					return nil, fmt.Errorf("read RLE literal chunk: %w", err)
				}
				out = appendClamped(out, chunk, total)
			}
		}
	}
	return out, nil
}

// appendClamped appends chunk to out without growing past total.
func appendClamped(out, chunk []byte, total int) []byte {
	if n := total - len(out); n < len(chunk) {
		chunk = chunk[:n]
	}
	return append(out, chunk...)
}
