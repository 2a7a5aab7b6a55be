package render

import (
	"math"

	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/scene"
)

// Lighting holds the three Blinn-Phong terms for one surface point.
type Lighting struct {
	Ambient  colors.Linear
	Diffuse  colors.Linear
	Specular colors.Linear
}

// Total sums the terms and caps each channel at 1.
func (l Lighting) Total() colors.Linear {
	return l.Ambient.Add(l.Diffuse).Add(l.Specular).ClampMax(1.0)
}

// Sample is the outcome of tracing one primary ray that hit a surface.
type Sample struct {
	*RayContext
	Shadowed bool
	Lighting Lighting
}

// Ambient returns the constant term light ⊙ material ambient.
func Ambient(light scene.Light, mat scene.Material) colors.Linear {
	return light.Color.Mul(mat.Ambient)
}

// ApplyDiffuse returns (light ⊙ material diffuse) scaled by L·N.
// The cosine is not clamped, so surfaces facing away from the light darken.
func ApplyDiffuse(ctx *RayContext, light scene.Light, mat scene.Material) colors.Linear {
	return light.Color.Mul(mat.Diffuse).Scale(ctx.LightDir.Dot(ctx.SurfaceNormal))
}

// ApplySpecularHighlight returns the Blinn-Phong highlight using the half
// vector between the light and view directions. N·H is clamped to zero
// before exponentiation.
func ApplySpecularHighlight(ctx *RayContext, light scene.Light, mat scene.Material, divisor float64) colors.Linear {
	halfVec := ctx.LightDir.Add(ctx.ViewDir).Normalize()
	specAngle := math.Max(ctx.SurfaceNormal.Dot(halfVec), 0)
	specular := math.Pow(specAngle, mat.Shininess/divisor)
	return mat.Specular.Mul(light.Color).Scale(specular)
}

// Illuminate computes every lighting term for an unoccluded point.
func Illuminate(ctx *RayContext, light scene.Light, divisor float64) Lighting {
	mat := ctx.Hit.Sphere.Material
	return Lighting{
		Ambient:  Ambient(light, mat),
		Diffuse:  ApplyDiffuse(ctx, light, mat),
		Specular: ApplySpecularHighlight(ctx, light, mat, divisor),
	}
}
