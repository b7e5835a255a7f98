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
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Inflate decompresses a zlib-wrapped payload into exactly sizeOrig
// bytes.
func Inflate(src []byte, sizeOrig int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %w", ErrDecompressFailed, err)
	}
	defer func() { _ = zr.Close() }()

	dst := make([]byte, sizeOrig)
	if _, err := io.ReadFull(zr, dst); err != nil {
		return nil, fmt.Errorf("%w: zlib: %w", ErrDecompressFailed, err)
	}
	return dst, nil
}
