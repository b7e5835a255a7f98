package pix

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch indicates that a pixel buffer's length disagrees with
// the declared dimensions.
var ErrSizeMismatch = errors.New("pixel data size does not match dimensions")

// UnsupportedBitDepthError is returned when a format or palette is asked
// for a bit depth outside the supported set.
type UnsupportedBitDepthError struct {
	Depth int
}

func (e UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("unsupported bit depth: %d", e.Depth)
}

// DimensionMismatchError is returned when two grids with unequal extents
// are composed.
type DimensionMismatchError struct {
	Width, Height           int
	OtherWidth, OtherHeight int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %dx%d vs %dx%d",
		e.Width, e.Height, e.OtherWidth, e.OtherHeight)
}

// IndexOutOfRangeError is returned when a palette index exceeds the
// palette size.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("palette index %d out of range [0, %d)", e.Index, e.Size)
}
