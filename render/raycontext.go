package render

import (
	"github.com/echoflaresat/spheretrace/scene"
	"github.com/echoflaresat/spheretrace/vectors"
)

// RayContext carries the per-hit geometry the shader needs.
type RayContext struct {
	Origin       vectors.Vec3
	RayDirection vectors.Vec3
	Hit          scene.Hit

	HitPoint      vectors.Vec3
	SurfaceNormal vectors.Vec3
	// ShiftedPoint is HitPoint lifted off the surface to start the shadow ray.
	ShiftedPoint vectors.Vec3

	LightDir vectors.Vec3
	// LightDistance is measured from the unshifted hit point.
	LightDistance float64
	ViewDir       vectors.Vec3
}

func NewRayContext(origin, dir vectors.Vec3, hit scene.Hit, light scene.Light, bias float64) *RayContext {
	c := &RayContext{
		Origin:       origin,
		RayDirection: dir,
		Hit:          hit,
	}

	c.HitPoint = hit.Point(origin, dir)
	c.SurfaceNormal = c.HitPoint.Sub(hit.Sphere.Center).Normalize()
	c.ShiftedPoint = c.HitPoint.Add(c.SurfaceNormal.Scale(bias))

	c.LightDir = light.Position.Sub(c.ShiftedPoint).Normalize()
	c.LightDistance = light.Position.Sub(c.HitPoint).Norm()
	c.ViewDir = origin.Sub(c.HitPoint).Normalize()
	return c
}
