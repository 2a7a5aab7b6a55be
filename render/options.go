package render

import (
	"io"
	"runtime"
)

const (
	// DefaultShadowBias is how far a shadow ray starts above the surface along its normal.
	DefaultShadowBias = 1e-5
	// DefaultShininessDivisor scales a material's shininess into the Blinn-Phong exponent.
	DefaultShininessDivisor = 4.0
)

// Options tune the shading pipeline and the render loop.
type Options struct {
	// ShadowBias and ShininessDivisor fall back to DefaultShadowBias and
	// DefaultShininessDivisor when zero.
	ShadowBias       float64
	ShininessDivisor float64

	// AmbientInShadow keeps the ambient term on occluded points. When false an
	// occluded point is left at the background color.
	AmbientInShadow bool

	// Workers bounds the number of rows rendered concurrently. Values < 1 mean GOMAXPROCS.
	Workers int

	// Progress receives ten-percent milestones when non-nil.
	Progress io.Writer
}

func DefaultOptions() Options {
	return Options{
		ShadowBias:       DefaultShadowBias,
		ShininessDivisor: DefaultShininessDivisor,
		Workers:          runtime.GOMAXPROCS(0),
	}
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}
