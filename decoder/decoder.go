// Package decoder defines the plug-in contract that per-title format
// modules implement and the registry that matches an input stream to the
// decoder understanding it.
package decoder

import (
	"errors"
	"fmt"

	"github.com/arcunpack/go-arcpix/pix"
	"github.com/arcunpack/go-arcpix/stream"
)

// Result is the outcome of a decode call: either a pixel grid or, for
// formats that merely unwrap a payload, the raw decoded bytes.
type Result struct {
	Image *pix.Grid
	Raw   []byte
}

// Decoder is implemented by one type per format family.
type Decoder interface {
	// IsRecognized reports whether the stream looks like this decoder's
	// format. It is probed against many irrelevant inputs and must never
	// fail: short reads, truncated files and mismatched signatures all
	// return false.
	IsRecognized(r *stream.Reader) bool

	// Decode reads the stream from the beginning and produces the
	// decoded result. A failed decode yields no partial result.
	Decode(r *stream.Reader) (*Result, error)
}

// ErrNoMatch is returned by FindRecognized when no registered decoder
// recognizes the input.
var ErrNoMatch = errors.New("no decoder matches the input")

// DuplicateTagError is returned when a tag is registered twice.
type DuplicateTagError struct {
	Tag string
}

func (e DuplicateTagError) Error() string {
	return fmt.Sprintf("decoder tag already registered: %q", e.Tag)
}

// Registry maps unique string tags to decoders, preserving registration
// order. It is populated once during initialization; lookups afterwards
// are read-only and safe for concurrent use as long as no further
// registration occurs.
type Registry struct {
	tags     []string
	decoders map[string]Decoder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds a decoder under a unique tag.
func (r *Registry) Register(tag string, d Decoder) error {
	if _, ok := r.decoders[tag]; ok {
		return DuplicateTagError{Tag: tag}
	}
	r.tags = append(r.tags, tag)
	r.decoders[tag] = d
	return nil
}

// Lookup returns the decoder registered under tag.
func (r *Registry) Lookup(tag string) (Decoder, bool) {
	d, ok := r.decoders[tag]
	return d, ok
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.tags))
	copy(tags, r.tags)
	return tags
}

// FindRecognized probes decoders in registration order against the
// stream and returns the first that recognizes it, along with its tag.
// Registration order doubles as priority order for ambiguous formats.
// Each probe sees the stream positioned at the start.
func (r *Registry) FindRecognized(s *stream.Reader) (string, Decoder, error) {
	for _, tag := range r.tags {
		if err := s.Seek(0); err != nil {
			return "", nil, err
		}
		if r.decoders[tag].IsRecognized(s) {
			return tag, r.decoders[tag], nil
		}
	}
	return "", nil, ErrNoMatch
}
