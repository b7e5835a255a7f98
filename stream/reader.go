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

// Package stream provides random-access reads over an in-memory byte
// buffer. Format decoders consume header fields and payloads through it;
// all multi-byte integers in the supported formats are little-endian
// unless a decoder states otherwise.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfData is returned when a read or seek runs past the end of the
// underlying buffer.
var ErrOutOfData = errors.New("read past end of stream")

// Reader reads bytes and little-endian integers from a byte slice while
// tracking an explicit position. The zero value is an empty stream.
type Reader struct {
	data []byte
	pos  int
}

// New creates a Reader over data. The Reader does not copy data; the
// caller must not mutate it while the Reader is in use.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Size returns the total length of the underlying buffer.
func (r *Reader) Size() int {
	return len(r.data)
}

// Tell returns the current read position.
func (r *Reader) Tell() int {
	return r.pos
}

// EOF reports whether the position is at or past the end of the buffer.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Seek moves the read position to pos.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("seek to %d in %d-byte stream: %w", pos, len(r.data), ErrOutOfData)
	}
	r.pos = pos
	return nil
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

// Read consumes and returns the next n bytes. The returned slice aliases
// the underlying buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("read %d bytes at %d in %d-byte stream: %w", n, r.pos, len(r.data), ErrOutOfData)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadToEOF consumes and returns all remaining bytes.
func (r *Reader) ReadToEOF() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}

// ReadU8 consumes and returns the next byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16LE consumes and returns the next little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE consumes and returns the next little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
