package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompressBackrefLiteralRun(t *testing.T) {
	src := []byte{0x00, 5, 'h', 'e', 'l', 'l', 'o'}
	got, err := DecompressBackref(src, 5)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("hello")) {
		t.Errorf("output = %q, want %q", got, "hello")
	}
}

func TestDecompressBackrefShortToken(t *testing.T) {
	// One literal run of 8 bytes, then a short back-reference with
	// distance 8 and repetitions (4&7)+4 = 8: tok = 8<<4 | 8 | 4.
	src := []byte{0x02, 8, 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 0x8C, 0x00}
	got, err := DecompressBackref(src, 16)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("ABCDEFGHABCDEFGH")) {
		t.Errorf("output = %q, want %q", got, "ABCDEFGHABCDEFGH")
	}
}

func TestDecompressBackrefShortTokenZeroDistance(t *testing.T) {
	// Low byte 0b0000_1100: flag bit set, count bits 100 -> 4+4 = 8
	// repetitions, distance bits all zero. The copy source sits at the
	// output cursor itself, so the token emits the buffer's pristine
	// zero bytes without failing.
	src := []byte{0x01, 0x0C, 0x00}
	got, err := DecompressBackref(src, 8)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, make([]byte, 8)) {
		t.Errorf("output = %v, want 8 zero bytes", got)
	}
}

func TestDecompressBackrefShortTokenReplicates(t *testing.T) {
	// Distance 2 with 8 repetitions replicates a 2-byte period:
	// tok = 2<<4 | 8 | 4 = 0x2C.
	src := []byte{0x02, 2, 'a', 'b', 0x2C, 0x00}
	got, err := DecompressBackref(src, 10)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("ababababab")) {
		t.Errorf("output = %q, want %q", got, "ababababab")
	}
}

func TestDecompressBackrefLongToken(t *testing.T) {
	// Long form: first word 0x0020 (bit 3 clear), extra byte 0x04 gives
	// tok = 0x2004: repetitions ((4>>2)+1)<<2 = 8, distance 2.
	src := []byte{0x02, 2, 'a', 'b', 0x20, 0x00, 0x04}
	got, err := DecompressBackref(src, 10)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("ababababab")) {
		t.Errorf("output = %q, want %q", got, "ababababab")
	}
}

func TestDecompressBackrefStopsAtDeclaredSize(t *testing.T) {
	// The literal run is longer than the declared output; the copy stops
	// at the output end and trailing compressed bytes stay unconsumed.
	src := []byte{0x00, 5, 'h', 'e', 'l', 'l', 'o', 0xDE, 0xAD}
	got, err := DecompressBackref(src, 3)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("hel")) {
		t.Errorf("output = %q, want %q", got, "hel")
	}
}

func TestDecompressBackrefBadBackReference(t *testing.T) {
	// Back-reference with distance 1 before anything was produced:
	// tok = 1<<4 | 8 | 4 = 0x1C.
	src := []byte{0x01, 0x1C, 0x00}
	if _, err := DecompressBackref(src, 8); !errors.Is(err, ErrBadBackReference) {
		t.Errorf("error = %v, want ErrBadBackReference", err)
	}
}

func TestDecompressBackrefTruncatedInput(t *testing.T) {
	src := []byte{0x00, 5, 'h', 'e'}
	if _, err := DecompressBackref(src, 5); err == nil {
		t.Error("truncated input succeeded, want error")
	}
}

func TestDecompressBackrefControlWordRefill(t *testing.T) {
	// Nine literal runs need a second control byte after the first
	// eight bits are spent.
	var src []byte
	src = append(src, 0x00)
	for i := 0; i < 8; i++ {
		src = append(src, 1, byte('a'+i))
	}
	src = append(src, 0x00, 1, 'i')
	got, err := DecompressBackref(src, 9)
	if err != nil {
		t.Fatalf("DecompressBackref: %v", err)
	}
	if !bytes.Equal(got, []byte("abcdefghi")) {
		t.Errorf("output = %q, want %q", got, "abcdefghi")
	}
}
