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

	"github.com/ulikunitz/xz/lzma"
)

// DecompressLZMA decompresses a classic .lzma container (13-byte header
// of properties, dictionary size and uncompressed length, then the raw
// stream). If sizeOrig is positive the output is pre-sized and read in
// full; otherwise the container's own length field governs and the
// stream is read to its end.
func DecompressLZMA(src []byte, sizeOrig int) ([]byte, error) {
	lr, err := lzma.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: lzma: %w", ErrDecompressFailed, err)
	}

	if sizeOrig > 0 {
		dst := make([]byte, sizeOrig)
		if _, err := io.ReadFull(lr, dst); err != nil {
			return nil, fmt.Errorf("%w: lzma: %w", ErrDecompressFailed, err)
		}
		return dst, nil
	}

	dst, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("%w: lzma: %w", ErrDecompressFailed, err)
	}
	return dst, nil
}
