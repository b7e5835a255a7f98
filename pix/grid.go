package pix

import (
	"fmt"
	"math/bits"

	"github.com/arcunpack/go-arcpix/bitstream"
	"github.com/arcunpack/go-arcpix/stream"
)

// Grid is a width x height matrix of pixels in dense row-major order.
// It is the terminal artifact of a decode call; the pixel count always
// equals width*height.
type Grid struct {
	width  int
	height int
	pixels []Pixel
}

// NewGrid creates a grid of the given extent filled with zero pixels.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid extent %dx%d: %w", width, height, ErrSizeMismatch)
	}
	return &Grid{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}, nil
}

// NewGridFromBytes unpacks width*height pixels from raw bytes laid out
// under the given format. data must hold exactly the required length.
func NewGridFromBytes(width, height int, data []byte, f Format) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	bpp := f.BytesPerPixel()
	if bpp == 0 || len(data) != width*height*bpp {
		return nil, fmt.Errorf("%dx%d %s grid from %d bytes: %w",
			width, height, f, len(data), ErrSizeMismatch)
	}
	for i := range g.pixels {
		g.pixels[i] = f.decodePixel(data[i*bpp : (i+1)*bpp])
	}
	return g, nil
}

// NewGridFromStream unpacks width*height pixels by consuming exactly
// width*height*BytesPerPixel bytes from the stream.
func NewGridFromStream(width, height int, r *stream.Reader, f Format) (*Grid, error) {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("grid format %s: %w", f, ErrSizeMismatch)
	}
	data, err := r.Read(width * height * bpp)
	if err != nil {
		return nil, fmt.Errorf("read pixel data: %w", err)
	}
	return NewGridFromBytes(width, height, data, f)
}

// NewGridFromPaletteBytes unpacks palette indices from raw bytes with the
// implicit bit width needed to address every palette entry, then looks
// each index up.
func NewGridFromPaletteBytes(width, height int, data []byte, p *Palette) (*Grid, error) {
	return NewGridFromPaletteBytesDepth(width, height, data, p, indexDepth(p.Size()))
}

// NewGridFromPaletteBytesDepth unpacks palette indices of an explicit bit
// width via the bit cursor, most significant bit first, then looks each
// index up. An index beyond the palette size fails with
// IndexOutOfRangeError.
func NewGridFromPaletteBytesDepth(width, height int, data []byte, p *Palette, depth int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	br := bitstream.New(data)
	for i := range g.pixels {
		idx, err := br.Get(depth)
		if err != nil {
			return nil, fmt.Errorf("read palette index: %w", err)
		}
		if int(idx) >= p.Size() {
			return nil, IndexOutOfRangeError{Index: int(idx), Size: p.Size()}
		}
		g.pixels[i] = p.At(int(idx))
	}
	return g, nil
}

// NewGridFromPaletteStream is the streaming variant of
// NewGridFromPaletteBytes, using the implicit bit width needed to
// address every palette entry.
func NewGridFromPaletteStream(width, height int, r *stream.Reader, p *Palette) (*Grid, error) {
	return NewGridFromPaletteStreamDepth(width, height, r, p, indexDepth(p.Size()))
}

// NewGridFromPaletteStreamDepth is the streaming variant of
// NewGridFromPaletteBytesDepth; it consumes exactly the bytes covering
// width*height indices of the given bit width.
func NewGridFromPaletteStreamDepth(width, height int, r *stream.Reader, p *Palette, depth int) (*Grid, error) {
	data, err := r.Read((width*height*depth + 7) / 8)
	if err != nil {
		return nil, fmt.Errorf("read palette indices: %w", err)
	}
	return NewGridFromPaletteBytesDepth(width, height, data, p, depth)
}

// indexDepth returns the bit width needed to address size palette
// entries.
func indexDepth(size int) int {
	if size <= 2 {
		return 1
	}
	return bits.Len(uint(size - 1))
}

// Width returns the horizontal extent.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the vertical extent.
func (g *Grid) Height() int {
	return g.height
}

// At returns the pixel at (x, y).
func (g *Grid) At(x, y int) Pixel {
	return g.pixels[y*g.width+x]
}

// Set replaces the pixel at (x, y).
func (g *Grid) Set(x, y int, p Pixel) {
	g.pixels[y*g.width+x] = p
}

// Pixels returns the grid's row-major pixel storage. Mutating the slice
// mutates the grid.
func (g *Grid) Pixels() []Pixel {
	return g.pixels
}

// FlipVertically reverses the row order in place.
func (g *Grid) FlipVertically() {
	for y := 0; y < g.height/2; y++ {
		top := g.pixels[y*g.width : (y+1)*g.width]
		bottom := g.pixels[(g.height-1-y)*g.width : (g.height-y)*g.width]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

// FlipHorizontally reverses the column order in place.
func (g *Grid) FlipHorizontally() {
	for y := 0; y < g.height; y++ {
		row := g.pixels[y*g.width : (y+1)*g.width]
		for x := 0; x < g.width/2; x++ {
			row[x], row[g.width-1-x] = row[g.width-1-x], row[x]
		}
	}
}

// Crop truncates the grid to its top-left width x height sub-rectangle.
// Requesting a crop larger than the current extent is an error.
func (g *Grid) Crop(width, height int) error {
	if width <= 0 || height <= 0 || width > g.width || height > g.height {
		return fmt.Errorf("crop %dx%d of %dx%d grid: %w",
			width, height, g.width, g.height, ErrSizeMismatch)
	}
	cropped := make([]Pixel, width*height)
	for y := 0; y < height; y++ {
		copy(cropped[y*width:(y+1)*width], g.pixels[y*g.width:y*g.width+width])
	}
	g.width = width
	g.height = height
	g.pixels = cropped
	return nil
}

// ApplyAlphaFromMask copies a luminance-derived alpha channel from a mask
// grid of identical extent into this grid's pixels.
func (g *Grid) ApplyAlphaFromMask(other *Grid) error {
	if other.width != g.width || other.height != g.height {
		return DimensionMismatchError{
			Width: g.width, Height: g.height,
			OtherWidth: other.width, OtherHeight: other.height,
		}
	}
	for i := range g.pixels {
		g.pixels[i].A = other.pixels[i].Luminance()
	}
	return nil
}

// ApplyPalette reinterprets the existing first-channel values as palette
// indices and replaces every pixel with its palette color.
func (g *Grid) ApplyPalette(p *Palette) error {
	for _, px := range g.pixels {
		if int(px.B) >= p.Size() {
			return IndexOutOfRangeError{Index: int(px.B), Size: p.Size()}
		}
	}
	for i := range g.pixels {
		g.pixels[i] = p.At(int(g.pixels[i].B))
	}
	return nil
}

// InvertAlpha complements the alpha channel of every pixel. Several
// 16- and 32-bit source formats store alpha inverted; the codecs that
// need this call it as a post-step so that palettes built from the same
// layouts stay untouched.
func (g *Grid) InvertAlpha() {
	for i := range g.pixels {
		g.pixels[i].A ^= 0xFF
	}
}
