package filter

import (
	"bytes"
	"errors"
	"testing"
)

func TestChromaUpsample(t *testing.T) {
	// One 2x2 block: Cb = 10, Cr = -20, luma 100..130.
	input := []byte{
		10,  // Cb plane
		236, // Cr plane (-20)
		100, 110, 120, 130, // luma plane
	}
	got, err := ChromaUpsample(input, 2, 2)
	if err != nil {
		t.Fatalf("ChromaUpsample: %v", err)
	}
	want := []byte{
		117, 110, 72, 127, 120, 82,
		137, 130, 92, 147, 140, 102,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestChromaUpsampleZeroChromaIsGray(t *testing.T) {
	input := []byte{
		0, 0,
		0, 128, 255, 64,
	}
	got, err := ChromaUpsample(input, 2, 2)
	if err != nil {
		t.Fatalf("ChromaUpsample: %v", err)
	}
	for i, luma := range []byte{0, 128, 255, 64} {
		b, g, r := got[3*i], got[3*i+1], got[3*i+2]
		if b != luma || g != luma || r != luma {
			t.Errorf("pixel %d = (%d,%d,%d), want gray %d", i, b, g, r, luma)
		}
	}
}

func TestChromaUpsampleClamps(t *testing.T) {
	// Maximum positive chroma pushes B and R past 255 on bright luma and
	// G below zero on dark luma.
	input := []byte{
		127, 127,
		255, 0, 255, 0,
	}
	got, err := ChromaUpsample(input, 2, 2)
	if err != nil {
		t.Fatalf("ChromaUpsample: %v", err)
	}
	if got[0] != 255 || got[2] != 255 {
		t.Errorf("bright pixel B,R = %d,%d, want 255,255", got[0], got[2])
	}
	if got[4] != 0 {
		t.Errorf("dark pixel G = %d, want 0", got[4])
	}
}

func TestChromaUpsampleRejectsOddExtent(t *testing.T) {
	if _, err := ChromaUpsample(make([]byte, 64), 3, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("odd width: error = %v, want ErrSizeMismatch", err)
	}
	if _, err := ChromaUpsample(make([]byte, 64), 2, 3); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("odd height: error = %v, want ErrSizeMismatch", err)
	}
	if _, err := ChromaUpsample(nil, 0, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("zero extent: error = %v, want ErrSizeMismatch", err)
	}
}

func TestChromaUpsampleShortInput(t *testing.T) {
	if _, err := ChromaUpsample(make([]byte, 5), 2, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error = %v, want ErrSizeMismatch", err)
	}
}
