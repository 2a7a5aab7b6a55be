package scene

import (
	"errors"
	"fmt"

	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/vectors"
)

var (
	ErrNegativeRadius = errors.New("scene: sphere radius is negative")
	ErrNoObjects      = errors.New("scene: no objects")
	ErrInvalidSize    = errors.New("scene: image dimensions must be positive")
)

// Material holds the Blinn-Phong coefficients of a surface.
// Reflectivity is carried for completeness; shading does not read it.
type Material struct {
	Ambient      colors.Linear
	Diffuse      colors.Linear
	Specular     colors.Linear
	Shininess    float64
	Reflectivity float64
}

// Sphere is a renderable surface.
type Sphere struct {
	Center   vectors.Vec3
	Material Material
	Radius   float64
}

// Light is a point light. It has no geometry and is never intersected.
type Light struct {
	Position vectors.Vec3
	Color    colors.Linear
}

// Scene is the ordered object list plus the light. It is not modified after New.
type Scene struct {
	Objects []Sphere
	Light   Light
}

// Config describes a complete frame: output size, camera and scene contents.
type Config struct {
	Width, Height int
	Camera        vectors.Vec3
	Objects       []Sphere
	Light         Light
}

// Validate checks the invariants the renderer relies on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if len(c.Objects) == 0 {
		return ErrNoObjects
	}
	for i, s := range c.Objects {
		if s.Radius < 0 {
			return fmt.Errorf("object %d: %w (%g)", i, ErrNegativeRadius, s.Radius)
		}
	}
	return nil
}

// Scene returns a copy of the configured objects and light.
func (c Config) Scene() *Scene {
	objs := make([]Sphere, len(c.Objects))
	copy(objs, c.Objects)
	return &Scene{Objects: objs, Light: c.Light}
}

// Original frame constants.
const (
	DefaultWidth  = 3840
	DefaultHeight = 2160
)

func plastic(ambient, diffuse colors.Linear) Material {
	return Material{
		Ambient:      ambient,
		Diffuse:      diffuse,
		Specular:     colors.White(),
		Shininess:    100,
		Reflectivity: 0.5,
	}
}

// DefaultConfig returns the fixed scene: three small spheres resting over a
// very large sphere acting as the floor, lit from the upper right.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: vectors.New(0, 0, 1),
		Objects: []Sphere{
			{
				Center:   vectors.New(-0.2, 0, -1),
				Material: plastic(colors.New(0, 0, 0.1), colors.New(0, 0, 0.7)),
				Radius:   0.7,
			},
			{
				Center:   vectors.New(0.1, -0.3, 0),
				Material: plastic(colors.New(0.1, 0, 0.1), colors.New(0.7, 0, 0.7)),
				Radius:   0.1,
			},
			{
				Center:   vectors.New(-0.3, 0, 0),
				Material: plastic(colors.New(0, 0.1, 0), colors.New(0, 0.6, 0)),
				Radius:   0.15,
			},
			{
				Center:   vectors.New(0, -9000, 0),
				Material: plastic(colors.New(0.1, 0.1, 0.1), colors.New(0.6, 0.6, 0.6)),
				Radius:   9000 - 0.7,
			},
		},
		Light: Light{
			Position: vectors.New(5, 5, 5),
			Color:    colors.White(),
		},
	}
}
