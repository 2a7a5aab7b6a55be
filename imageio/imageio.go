package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG format with image.Decode
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/tiff"
	_ "golang.org/x/image/bmp" // register BMP format with image.Decode
	xtiff "golang.org/x/image/tiff"

	"github.com/echoflaresat/spheretrace/bmp"
	"github.com/echoflaresat/spheretrace/framebuffer"
)

var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Save writes fb to path, choosing the encoder from the file extension.
// ".bmp" uses the minimal 24-bit writer; ".png" and ".tif"/".tiff" go
// through the standard encoders.
func Save(path string, fb *framebuffer.Framebuffer) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".bmp":
		return bmp.WriteFile(path, fb)
	case ".png":
		return writeWith(path, func(w io.Writer) error {
			return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, fb)
		})
	case ".tif", ".tiff":
		return writeWith(path, func(w io.Writer) error {
			return xtiff.Encode(w, fb, &xtiff.Options{Compression: xtiff.Deflate})
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func writeWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads an image from path. Unpadded 24-bit bitmaps as written by Save
// are read directly; otherwise TIFF is tried first, then any format
// registered with image.Decode (BMP, PNG, JPEG). The result is fully decoded
// into memory.
func Load(path string) (image.Image, error) {
	img, err := loadUnpadded(path)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, errNotUnpadded) {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		slog.Debug("not a TIFF, falling back to image codecs", "path", path, "error", err)

		// fallback to image codecs
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		img, _, err = image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return toNRGBA(img), nil
}

var errNotUnpadded = errors.New("not an unpadded 24-bit bitmap")

// loadUnpadded reads bitmaps whose rows carry no padding. Files whose size
// does not match that layout exactly are left to the standard decoders.
func loadUnpadded(path string) (image.Image, error) {
	f, err := bmp.Open(path)
	if errors.Is(err, bmp.ErrInvalidHeader) {
		return nil, errNotUnpadded
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if f.Offset != bmp.PixelOffset || f.Size() != bmp.PixelOffset+f.PixelBytes() {
		return nil, errNotUnpadded
	}

	pix, err := f.Pixels()
	if err != nil {
		return nil, err
	}
	fb, err := framebuffer.FromBytes(f.Width, f.Height, pix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return toNRGBA(fb), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
