package bitstream

import (
	"errors"
	"testing"
)

func TestReaderMSBFirst(t *testing.T) {
	r := New([]byte{0xB0}) // 1011 0000

	got, err := r.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if got != 1 {
		t.Errorf("Get(1) = %d, want 1", got)
	}

	got, err = r.Get(3)
	if err != nil {
		t.Fatalf("Get(3): %v", err)
	}
	if got != 0b011 {
		t.Errorf("Get(3) = %d, want 3", got)
	}

	got, err = r.Get(4)
	if err != nil {
		t.Fatalf("Get(4): %v", err)
	}
	if got != 0 {
		t.Errorf("Get(4) = %d, want 0", got)
	}
}

func TestReaderCrossesByteBoundaries(t *testing.T) {
	r := New([]byte{0xFF, 0x0F, 0xA5, 0x5A})

	got, err := r.Get(12)
	if err != nil {
		t.Fatalf("Get(12): %v", err)
	}
	if got != 0xFF0 {
		t.Errorf("Get(12) = 0x%03x, want 0xFF0", got)
	}

	got, err = r.Get(20)
	if err != nil {
		t.Fatalf("Get(20): %v", err)
	}
	if got != 0xFA55A {
		t.Errorf("Get(20) = 0x%05x, want 0xFA55A", got)
	}
}

func TestReaderZeroWidthRead(t *testing.T) {
	r := New([]byte{0xAB})
	got, err := r.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if got != 0 {
		t.Errorf("Get(0) = %d, want 0", got)
	}
	if r.Remaining() != 8 {
		t.Errorf("Remaining = %d, want 8", r.Remaining())
	}
}

func TestReaderOutOfData(t *testing.T) {
	r := New([]byte{0xAB})
	if _, err := r.Get(5); err != nil {
		t.Fatalf("Get(5): %v", err)
	}
	if _, err := r.Get(4); !errors.Is(err, ErrOutOfData) {
		t.Errorf("Get past end: error = %v, want ErrOutOfData", err)
	}
	// The failed read must not consume anything.
	got, err := r.Get(3)
	if err != nil {
		t.Fatalf("Get(3): %v", err)
	}
	if got != 0b011 {
		t.Errorf("Get(3) = %d, want 3", got)
	}
}

func TestReaderInvalidWidth(t *testing.T) {
	r := New(make([]byte, 16))
	if _, err := r.Get(33); err == nil {
		t.Error("Get(33) succeeded, want error")
	}
	if _, err := r.Get(-1); err == nil {
		t.Error("Get(-1) succeeded, want error")
	}
}
