package arcpix

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/arcunpack/go-arcpix/pix"
)

// buildACDFile assembles a minimal grayscale ACD image: bits 0110 1100
// decode to the pixels 0, 255, 0, 255.
func buildACDFile() []byte {
	compressed := []byte{0x00, 0x01, 0x6C}
	file := []byte("ACD 1.00")
	file = binary.LittleEndian.AppendUint32(file, 28)
	file = binary.LittleEndian.AppendUint32(file, uint32(len(compressed)))
	file = binary.LittleEndian.AppendUint32(file, 1)
	file = binary.LittleEndian.AppendUint32(file, 2)
	file = binary.LittleEndian.AppendUint32(file, 2)
	return append(file, compressed...)
}

func zstdFrame(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil)
}

func TestDecodeMatchesByMagic(t *testing.T) {
	tag, res, err := Decode(buildACDFile())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tag != "fc01/acd" {
		t.Errorf("tag = %q, want %q", tag, "fc01/acd")
	}
	if res.Image == nil || res.Image.Width() != 2 || res.Image.Height() != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for i, want := range []uint8{0, 0xFF, 0, 0xFF} {
		if got := res.Image.Pixels()[i].B; got != want {
			t.Errorf("pixel %d = %d, want %d", i, got, want)
		}
	}
}

func TestDecodeRawWrapper(t *testing.T) {
	plain := bytes.Repeat([]byte("resource"), 16)
	tag, res, err := Decode(zstdFrame(t, plain))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tag != "packed/zstd" {
		t.Errorf("tag = %q, want %q", tag, "packed/zstd")
	}
	if res.Image != nil {
		t.Error("wrapper decode produced an image")
	}
	if !bytes.Equal(res.Raw, plain) {
		t.Error("unwrapped bytes differ from input")
	}
}

func TestDecodeUnrecognized(t *testing.T) {
	if _, _, err := Decode([]byte("not an image at all")); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("error = %v, want ErrUnrecognizedFormat", err)
	}
	if _, _, err := Decode(nil); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("empty input: error = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestDecodeTagged(t *testing.T) {
	res, err := DecodeTagged("fc01/acd", buildACDFile())
	if err != nil {
		t.Fatalf("DecodeTagged: %v", err)
	}
	if res.Image == nil {
		t.Fatal("no image decoded")
	}

	if _, err := DecodeTagged("no/such", buildACDFile()); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("unknown tag: error = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestTagsProbeOrder(t *testing.T) {
	tags := Tags()
	if len(tags) == 0 {
		t.Fatal("no built-in decoders registered")
	}
	if tags[0] != "amuse-craft/pgd" {
		t.Errorf("first tag = %q, want %q", tags[0], "amuse-craft/pgd")
	}
	// The heuristic LZMA probe must come after every magic-tagged format.
	if tags[len(tags)-1] != "packed/lzma" {
		t.Errorf("last tag = %q, want %q", tags[len(tags)-1], "packed/lzma")
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.acd")
	if err := os.WriteFile(path, buildACDFile(), 0o600); err != nil {
		t.Fatal(err)
	}
	tag, res, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if tag != "fc01/acd" || res.Image == nil {
		t.Errorf("tag = %q, res = %+v", tag, res)
	}

	if _, _, err := DecodeFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file decoded, want error")
	}
}

func TestToImage(t *testing.T) {
	g, err := pix.NewGridFromBytes(2, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8}, pix.BGRA8888)
	if err != nil {
		t.Fatal(err)
	}
	img := ToImage(g)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	want := color.NRGBA{R: 3, G: 2, B: 1, A: 4}
	if got := img.NRGBAAt(0, 0); got != want {
		t.Errorf("pixel (0,0) = %+v, want %+v", got, want)
	}
	want = color.NRGBA{R: 7, G: 6, B: 5, A: 8}
	if got := img.NRGBAAt(1, 0); got != want {
		t.Errorf("pixel (1,0) = %+v, want %+v", got, want)
	}
}
