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

// DecompressBackref expands a back-reference compressed stream into
// exactly sizeOrig bytes.
//
// A rolling 16-bit control word supplies one decision bit per token,
// low bit first. When its guard bits run out, a fresh control byte is
// read and 0xFF00 is OR'd on top as the new bit supply. A 0 bit copies a
// literal run (8-bit count, then that many bytes) to the output; a 1 bit
// copies repetitions from already-produced output. Back-reference tokens
// come in two forms keyed by bit 3 of their first byte:
//
//	short (2 bytes): repetitions = (tok & 7) + 4, distance = tok >> 4
//	long  (3 bytes): tok = tok<<8 | extra,
//	                 repetitions = ((((tok & 0xFFC) >> 2) + 1) << 2) | (tok & 3),
//	                 distance = tok >> 12
//
// A copy source preceding the output start fails with
// ErrBadBackReference. Copying stops early at the output end; trailing
// compressed bytes beyond that point are not consumed.
func DecompressBackref(src []byte, sizeOrig int) ([]byte, error) {
	out := make([]byte, sizeOrig)
	in := stream.New(src)
	pos := 0
	var control uint16

	for pos < len(out) {
		control >>= 1
		if control&0x100 == 0 {
			b, err := in.ReadU8()
			if err != nil {
				return nil, fmt.Errorf("read control byte: %w", err)
			}
			control = uint16(b) | 0xFF00
		}

		if control&1 != 0 {
			tok16, err := in.ReadU16LE()
			if err != nil {
				return nil, fmt.Errorf("read back-reference token: %w", err)
			}
			tok := uint32(tok16)
			var repetitions, lookBehind int
			if tok&8 != 0 {
				repetitions = int(tok&7) + 4
				lookBehind = int(tok >> 4)
			} else {
				extra, err := in.ReadU8()
				if err != nil {
					return nil, fmt.Errorf("read back-reference token: %w", err)
				}
				tok = tok<<8 | uint32(extra)
				repetitions = int(((tok&0xFFC)>>2+1)<<2 | tok&3)
				lookBehind = int(tok >> 12)
			}

			from := pos - lookBehind
			if from < 0 {
				return nil, fmt.Errorf("distance %d at output position %d: %w",
					lookBehind, pos, ErrBadBackReference)
			}
			// Byte-wise copy: the source may overlap the destination,
			// which is how short distances replicate runs.
			for pos < len(out) && repetitions > 0 {
				out[pos] = out[from]
				pos++
				from++
				repetitions--
			}
		} else {
			count, err := in.ReadU8()
			if err != nil {
				return nil, fmt.Errorf("read literal count: %w", err)
			}
			literals, err := in.Read(int(count))
			if err != nil {
				return nil, fmt.Errorf("read literal run: %w", err)
			}
			n := copy(out[pos:], literals)
			pos += n
		}
	}
	return out, nil
}
