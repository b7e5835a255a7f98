package decoder

import (
	"errors"
	"testing"

	"github.com/arcunpack/go-arcpix/stream"
)

// magicDecoder recognizes streams starting with its magic byte and
// records how often it was probed.
type magicDecoder struct {
	magic  byte
	probes int
}

func (d *magicDecoder) IsRecognized(r *stream.Reader) bool {
	d.probes++
	b, err := r.ReadU8()
	return err == nil && b == d.magic
}

func (d *magicDecoder) Decode(r *stream.Reader) (*Result, error) {
	return &Result{Raw: r.ReadToEOF()}, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	d := &magicDecoder{magic: 'A'}
	if err := reg.Register("a", d); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := reg.Lookup("a")
	if !ok || got != Decoder(d) {
		t.Errorf("Lookup(a) = %v, %v", got, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) succeeded")
	}
}

func TestRegistryDuplicateTag(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("a", &magicDecoder{magic: 'A'}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := reg.Register("a", &magicDecoder{magic: 'B'})
	var dupErr DuplicateTagError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error = %v, want DuplicateTagError", err)
	}
	if dupErr.Tag != "a" {
		t.Errorf("Tag = %q, want %q", dupErr.Tag, "a")
	}
}

func TestRegistryTagsPreserveOrder(t *testing.T) {
	reg := NewRegistry()
	for _, tag := range []string{"c", "a", "b"} {
		if err := reg.Register(tag, &magicDecoder{}); err != nil {
			t.Fatalf("Register(%s): %v", tag, err)
		}
	}
	tags := reg.Tags()
	if len(tags) != 3 || tags[0] != "c" || tags[1] != "a" || tags[2] != "b" {
		t.Errorf("Tags = %v, want [c a b]", tags)
	}

	// The returned slice is a copy.
	tags[0] = "z"
	if reg.Tags()[0] != "c" {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestFindRecognizedHonorsRegistrationOrder(t *testing.T) {
	// Both decoders match; the one registered first wins.
	first := &magicDecoder{magic: 'X'}
	second := &magicDecoder{magic: 'X'}
	reg := NewRegistry()
	if err := reg.Register("first", first); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("second", second); err != nil {
		t.Fatal(err)
	}

	tag, d, err := reg.FindRecognized(stream.New([]byte{'X', 1, 2}))
	if err != nil {
		t.Fatalf("FindRecognized: %v", err)
	}
	if tag != "first" || d != Decoder(first) {
		t.Errorf("matched %q, want %q", tag, "first")
	}
	if second.probes != 0 {
		t.Errorf("later decoder probed %d times after a match", second.probes)
	}
}

func TestFindRecognizedRewindsBetweenProbes(t *testing.T) {
	// The first probe consumes a byte; the second must still see the
	// stream from position zero.
	reg := NewRegistry()
	if err := reg.Register("a", &magicDecoder{magic: 'A'}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("b", &magicDecoder{magic: 'B'}); err != nil {
		t.Fatal(err)
	}

	tag, _, err := reg.FindRecognized(stream.New([]byte{'B'}))
	if err != nil {
		t.Fatalf("FindRecognized: %v", err)
	}
	if tag != "b" {
		t.Errorf("matched %q, want %q", tag, "b")
	}
}

func TestFindRecognizedNoMatch(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("a", &magicDecoder{magic: 'A'}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := reg.FindRecognized(stream.New([]byte{'Z'})); !errors.Is(err, ErrNoMatch) {
		t.Errorf("error = %v, want ErrNoMatch", err)
	}
	if _, _, err := reg.FindRecognized(stream.New(nil)); !errors.Is(err, ErrNoMatch) {
		t.Errorf("empty stream: error = %v, want ErrNoMatch", err)
	}
}
