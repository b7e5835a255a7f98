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

	"github.com/klauspost/compress/zstd"
)

// DecompressZstd decompresses a Zstandard frame. sizeOrig is a capacity
// hint; the frame header governs the actual output length.
func DecompressZstd(src []byte, sizeOrig int) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd init: %w", ErrDecompressFailed, err)
	}
	defer dec.Close()

	if sizeOrig < 0 {
		sizeOrig = 0
	}
	dst, err := dec.DecodeAll(src, make([]byte, 0, sizeOrig))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompressFailed, err)
	}
	return dst, nil
}
