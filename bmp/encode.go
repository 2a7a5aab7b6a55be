package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/echoflaresat/spheretrace/framebuffer"
)

// Encode writes a minimal uncompressed 24-bit bitmap. pix holds width*height
// B,G,R triples, row-major, written as-is with no row padding.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidHeader, width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 ||
		int64(width)*int64(height) > MaxPixelBytes/bytesPerPixel {
		return fmt.Errorf("%w: %dx%d exceeds %d pixel bytes", ErrInvalidHeader, width, height, int64(MaxPixelBytes))
	}
	if len(pix) != width*height*bytesPerPixel {
		return fmt.Errorf("%w: got %d bytes for %dx%d", ErrPixelCount, len(pix), width, height)
	}

	fh, ih := newHeaders(width, height)
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, ih); err != nil {
		return err
	}
	_, err := w.Write(pix)
	return err
}

// WriteFile encodes fb into a new file at path.
func WriteFile(path string, fb *framebuffer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, fb.Width, fb.Height, fb.Bytes()); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
