package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	xbmp "golang.org/x/image/bmp"

	"github.com/echoflaresat/spheretrace/bmp"
	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/framebuffer"
)

func gradient(t *testing.T, width, height int) *framebuffer.Framebuffer {
	t.Helper()
	fb, err := framebuffer.New(width, height)
	if err != nil {
		t.Fatalf("framebuffer.New: %v", err)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			fb.Set(row, col, colors.BGR{B: uint8(row * 20), G: uint8(col * 15), R: uint8(row*col + 3)})
		}
	}
	return fb
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name          string
		width, height int
	}{
		{"frame.bmp", 12, 5},
		{"odd.bmp", 5, 4},
		{"frame.png", 12, 5},
		{"odd.png", 5, 4},
		{"frame.tiff", 12, 5},
		{"FRAME.TIF", 7, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fb := gradient(t, c.width, c.height)
			path := filepath.Join(dir, c.name)
			if err := Save(path, fb); err != nil {
				t.Fatalf("Save: %v", err)
			}
			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			stats, err := Diff(fb, img)
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			if !stats.Equal() {
				t.Errorf("%d of %d pixels differ (max delta %d)", stats.Differing, stats.Pixels, stats.MaxDelta)
			}
		})
	}
}

func TestLoadUnpaddedBitmap(t *testing.T) {
	dir := t.TempDir()
	for _, width := range []int{1, 5, 7, 12, 101} {
		fb := gradient(t, width, 4)
		path := filepath.Join(dir, fmt.Sprintf("w%d.bmp", width))
		if err := Save(path, fb); err != nil {
			t.Fatalf("width %d: Save: %v", width, err)
		}
		img, err := Load(path)
		if err != nil {
			t.Fatalf("width %d: Load: %v", width, err)
		}
		stats, err := Diff(fb, img)
		if err != nil {
			t.Fatalf("width %d: Diff: %v", width, err)
		}
		if !stats.Equal() {
			t.Errorf("width %d: %d of %d pixels differ", width, stats.Differing, stats.Pixels)
		}
	}
}

// Padded bitmaps from other writers still go through the standard decoder.
func TestLoadPaddedBitmap(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 70), B: 9, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, src); err != nil {
		t.Fatalf("x/image/bmp encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "padded.bmp")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	// 5 pixels of 3 bytes pad each row to 16 bytes
	if h, err := bmp.ReadHeader(bytes.NewReader(buf.Bytes())); err == nil && buf.Len() == bmp.PixelOffset+h.PixelBytes() {
		t.Fatalf("encoded rows carry no padding")
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	stats, err := Diff(src, img)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !stats.Equal() {
		t.Errorf("%d of %d pixels differ", stats.Differing, stats.Pixels)
	}
}

func TestSaveUnsupported(t *testing.T) {
	fb := gradient(t, 2, 2)
	err := Save(filepath.Join(t.TempDir(), "frame.gif"), fb)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDiff(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	b := image.NewNRGBA(image.Rect(10, 10, 13, 13))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			a.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			b.SetNRGBA(10+x, 10+y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	stats, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !stats.Equal() || stats.Pixels != 9 {
		t.Errorf("stats = %+v, want 9 equal pixels", stats)
	}

	b.SetNRGBA(11, 12, color.NRGBA{R: 10, G: 60, B: 25, A: 255})
	stats, err = Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if stats.Differing != 1 || stats.MaxDelta != 40 {
		t.Errorf("stats = %+v, want 1 differing pixel with max delta 40", stats)
	}

	if _, err := Diff(a, image.NewNRGBA(image.Rect(0, 0, 2, 3))); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("err = %v, want ErrSizeMismatch", err)
	}
}
