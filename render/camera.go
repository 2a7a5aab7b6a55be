package render

import (
	"github.com/echoflaresat/spheretrace/vectors"
)

// Camera is a pinhole at Position looking down -Z through an image plane at
// z = 0. The plane spans x in [-1, 1) and y in [-aspect, aspect), one pixel
// of width 2/width per column and per row.
type Camera struct {
	Position    vectors.Vec3
	Width       int
	Height      int
	PixelWidth  float64
	AspectRatio float64
}

func NewCamera(position vectors.Vec3, width, height int) Camera {
	return Camera{
		Position:    position,
		Width:       width,
		Height:      height,
		PixelWidth:  2.0 / float64(width),
		AspectRatio: float64(height) / float64(width),
	}
}

// PlanePoint maps pixel (row, col) onto the image plane. Row 0 is the bottom row.
func (c Camera) PlanePoint(row, col int) vectors.Vec3 {
	return vectors.Vec3{
		X: -1 + float64(col)*c.PixelWidth,
		Y: -c.AspectRatio + float64(row)*c.PixelWidth,
		Z: 0,
	}
}

// ComputeRay returns the normalized direction from the camera through pixel (row, col).
func (c Camera) ComputeRay(row, col int) vectors.Vec3 {
	return c.PlanePoint(row, col).Sub(c.Position).Normalize()
}
