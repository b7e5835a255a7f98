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

// Package codec expands the compressed byte streams found inside the
// supported image formats: a variable-token back-reference scheme, a
// run-length scheme keyed to the pixel width, and wrapped zlib, LZMA and
// Zstandard payloads. Every decompressor produces exactly the declared
// output size or fails; none performs recognition.
package codec

import "errors"

// Common errors for payload decompression.
var (
	// ErrBadBackReference indicates a back-reference copy source that
	// precedes the start of the output buffer.
	ErrBadBackReference = errors.New("back reference before output start")

	// ErrDecompressFailed indicates a wrapped codec failed.
	ErrDecompressFailed = errors.New("decompression failed")
)
