// Package packed decodes standalone compression wrappers that some
// archives store resources in. The decoders return the unwrapped raw
// bytes; interpreting them is the caller's concern.
package packed

import (
	"bytes"
	"encoding/binary"

	"github.com/arcunpack/go-arcpix/codec"
	"github.com/arcunpack/go-arcpix/decoder"
	"github.com/arcunpack/go-arcpix/stream"
)

// lzmaHeaderSize is the classic .lzma container header: one properties
// byte, a 4-byte dictionary size and an 8-byte uncompressed length.
const lzmaHeaderSize = 13

// LZMADecoder unwraps classic .lzma containers.
type LZMADecoder struct{}

// NewLZMADecoder creates an LZMA wrapper decoder.
func NewLZMADecoder() *LZMADecoder {
	return &LZMADecoder{}
}

// IsRecognized reports whether the stream plausibly starts with a
// classic .lzma header. The container has no magic; the check validates
// the properties byte and dictionary size instead, so this decoder
// should be registered after every magic-tagged format.
func (*LZMADecoder) IsRecognized(r *stream.Reader) bool {
	header, err := r.Read(lzmaHeaderSize)
	if err != nil {
		return false
	}
	// props = (pb*5 + lp)*9 + lc with lc<9, lp<5, pb<5
	if header[0] >= 9*5*5 {
		return false
	}
	dictSize := binary.LittleEndian.Uint32(header[1:5])
	return dictSize >= 1<<12 && dictSize <= 1<<30
}

// Decode unwraps the container and returns the decompressed bytes.
func (*LZMADecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	raw, err := codec.DecompressLZMA(r.ReadToEOF(), 0)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Raw: raw}, nil
}

// zstdMagic is the Zstandard frame magic, little-endian 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// ZstdDecoder unwraps Zstandard frames.
type ZstdDecoder struct{}

// NewZstdDecoder creates a Zstandard wrapper decoder.
func NewZstdDecoder() *ZstdDecoder {
	return &ZstdDecoder{}
}

// IsRecognized reports whether the stream starts with the Zstandard
// frame magic.
func (*ZstdDecoder) IsRecognized(r *stream.Reader) bool {
	b, err := r.Read(len(zstdMagic))
	return err == nil && bytes.Equal(b, zstdMagic)
}

// Decode unwraps the frame and returns the decompressed bytes.
func (*ZstdDecoder) Decode(r *stream.Reader) (*decoder.Result, error) {
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	raw, err := codec.DecompressZstd(r.ReadToEOF(), 0)
	if err != nil {
		return nil, err
	}
	return &decoder.Result{Raw: raw}, nil
}
