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

// Package bitstream extracts fixed-width unsigned integers from a byte
// buffer at bit granularity, most-significant bit first within each byte.
// It is used both for palette-indexed pixel unpacking and for
// compressed-stream control bits, and carries no knowledge of what the
// bits mean.
package bitstream

import (
	"errors"
	"fmt"
)

// ErrOutOfData is returned when fewer bits remain than a read requests.
var ErrOutOfData = errors.New("bit reader: out of data")

// Reader reads bit fields from a byte slice.
type Reader struct {
	data []byte
	pos  int // bit offset
}

// New creates a Reader over data, starting at bit offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// Get consumes and returns the next count bits as an unsigned integer.
// count must be between 0 and 32.
func (r *Reader) Get(count int) (uint32, error) {
	if count < 0 || count > 32 {
		return 0, fmt.Errorf("bit reader: invalid field width %d", count)
	}
	if count > r.Remaining() {
		return 0, ErrOutOfData
	}
	var v uint32
	for i := 0; i < count; i++ {
		bit := r.data[r.pos>>3] >> (7 - uint(r.pos&7)) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}
