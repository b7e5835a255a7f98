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

// Package arcpix decodes proprietary raster-image and bitstream
// encodings found in legacy multimedia archives, converting each
// reverse-engineered format into one common in-memory pixel
// representation for re-export.
package arcpix

import (
	"errors"
	"fmt"
	"os"

	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/stream"
	"github.com/arcunpack/go-arcpix/titles/amusecraft"
	"github.com/arcunpack/go-arcpix/titles/fc01"
	"github.com/arcunpack/go-arcpix/titles/packed"
	"github.com/arcunpack/go-arcpix/titles/truevision"
	"github.com/arcunpack/go-arcpix/titles/twilight"
)

// Result is an alias for decoder.Result for convenience.
type Result = decoder.Result

// ErrUnrecognizedFormat is returned when no registered decoder matches a
// probed stream.
var ErrUnrecognizedFormat = errors.New("unrecognized format")

// NewRegistry builds a registry holding every built-in decoder. The
// registration order doubles as probe priority: formats with strong
// magic go first, footer-tagged and heuristic formats last.
func NewRegistry() *decoder.Registry {
	reg := decoder.NewRegistry()
	mustRegister(reg, "amuse-craft/pgd", amusecraft.NewPGDDecoder())
	mustRegister(reg, "fc01/acd", fc01.NewACDDecoder())
	mustRegister(reg, "twilight-frontier/tfbm", twilight.NewTFBMDecoder())
	mustRegister(reg, "packed/zstd", packed.NewZstdDecoder())
	mustRegister(reg, "truevision/tga", truevision.NewTGADecoder())
	mustRegister(reg, "packed/lzma", packed.NewLZMADecoder())
	return reg
}

// mustRegister panics on a duplicate tag; the built-in list is fixed, so
// a collision is a programming error.
func mustRegister(reg *decoder.Registry, tag string, d decoder.Decoder) {
	if err := reg.Register(tag, d); err != nil {
		panic(err)
	}
}

// defaultRegistry is built once during package initialization and only
// read afterwards.
var defaultRegistry = NewRegistry()

// Tags returns the built-in decoder tags in probe order.
func Tags() []string {
	return defaultRegistry.Tags()
}

// Decode probes the built-in decoders against data and decodes it with
// the first that recognizes it, returning the matched tag alongside the
// result.
func Decode(data []byte) (string, *Result, error) {
	return DecodeWith(defaultRegistry, data)
}

// DecodeWith is Decode over a caller-assembled registry.
func DecodeWith(reg *decoder.Registry, data []byte) (string, *Result, error) {
	s := stream.New(data)
	tag, dec, err := reg.FindRecognized(s)
	if err != nil {
		if errors.Is(err, decoder.ErrNoMatch) {
			return "", nil, ErrUnrecognizedFormat
		}
		return "", nil, err
	}
	if err := s.Seek(0); err != nil {
		return "", nil, err
	}
	res, err := dec.Decode(s)
	if err != nil {
		return "", nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	return tag, res, nil
}

// DecodeTagged decodes data with the named built-in decoder, skipping
// recognition. This is the path for formats whose recognition relies on
// optional signatures.
func DecodeTagged(tag string, data []byte) (*Result, error) {
	dec, ok := defaultRegistry.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("decode %s: %w", tag, ErrUnrecognizedFormat)
	}
	res, err := dec.Decode(stream.New(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	return res, nil
}

// DecodeFile reads the file at path and decodes it with the built-in
// decoders.
func DecodeFile(path string) (string, *Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path from user input is expected
	if err != nil {
		return "", nil, fmt.Errorf("read input file: %w", err)
	}
	return Decode(data)
}
