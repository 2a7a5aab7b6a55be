package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/echoflaresat/spheretrace/colors"
)

// BytesPerPixel is the size of one stored pixel.
const BytesPerPixel = 3

// ErrInvalidSize is returned when a framebuffer cannot be allocated for the
// requested dimensions.
var ErrInvalidSize = errors.New("framebuffer: invalid size")

// maxBytes keeps width*height*3 representable in the 32-bit size field of a bitmap.
const maxBytes = math.MaxUint32 - 54

// Framebuffer is a row-major raster of BGR pixels. Row 0 is the bottom
// scanline, which is the order bitmap pixel data is stored in.
type Framebuffer struct {
	Width, Height int
	Pix           []colors.BGR
}

// New allocates a zero-filled (black) framebuffer.
func New(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if int64(width)*int64(height) > maxBytes/BytesPerPixel {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d bytes", ErrInvalidSize, width, height, int64(maxBytes))
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]colors.BGR, width*height),
	}, nil
}

// FromBytes builds a framebuffer from packed B,G,R triples, row 0 first.
func FromBytes(width, height int, pix []byte) (*Framebuffer, error) {
	f, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != len(f.Pix)*BytesPerPixel {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidSize, len(pix), width, height)
	}
	for i := range f.Pix {
		p := pix[i*BytesPerPixel:]
		f.Pix[i] = colors.BGR{B: p[0], G: p[1], R: p[2]}
	}
	return f, nil
}

func (f *Framebuffer) offset(row, col int) int {
	return row*f.Width + col
}

// Set writes the pixel at (row, col).
func (f *Framebuffer) Set(row, col int, c colors.BGR) {
	f.Pix[f.offset(row, col)] = c
}

// Get returns the pixel at (row, col).
func (f *Framebuffer) Get(row, col int) colors.BGR {
	return f.Pix[f.offset(row, col)]
}

// Row returns the pixels of one row. Writes through the slice land in the framebuffer.
func (f *Framebuffer) Row(row int) []colors.BGR {
	start := f.offset(row, 0)
	return f.Pix[start : start+f.Width]
}

// Bytes returns the raster as tightly packed B,G,R triples, row 0 first.
func (f *Framebuffer) Bytes() []byte {
	out := make([]byte, 0, len(f.Pix)*BytesPerPixel)
	for _, p := range f.Pix {
		out = append(out, p.B, p.G, p.R)
	}
	return out
}

func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements image.Image. Image y grows downward, so it is flipped onto rows.
func (f *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(f.Bounds())) {
		return color.RGBA{}
	}
	return f.Get(f.Height-1-y, x)
}
