package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrSizeMismatch = errors.New("imageio: image sizes differ")

// DiffStats summarises a pixel-by-pixel comparison.
type DiffStats struct {
	Pixels    int
	Differing int
	// MaxDelta is the largest 8-bit channel difference seen.
	MaxDelta uint8
}

func (d DiffStats) Equal() bool {
	return d.Differing == 0
}

// Diff compares a and b in 8-bit non-premultiplied RGBA.
func Diff(a, b image.Image) (DiffStats, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return DiffStats{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	stats := DiffStats{Pixels: ab.Dx() * ab.Dy()}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)
			if ca == cb {
				continue
			}
			stats.Differing++
			for _, d := range []uint8{delta(ca.R, cb.R), delta(ca.G, cb.G), delta(ca.B, cb.B), delta(ca.A, cb.A)} {
				if d > stats.MaxDelta {
					stats.MaxDelta = d
				}
			}
		}
	}
	return stats, nil
}

func delta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
