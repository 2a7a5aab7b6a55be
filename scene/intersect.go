package scene

import (
	"math"

	"github.com/echoflaresat/spheretrace/vectors"
)

// Hit is the result of a nearest-surface search.
type Hit struct {
	Sphere *Sphere
	T      float64
}

// Point returns origin + dir*T.
func (h Hit) Point(origin, dir vectors.Vec3) vectors.Vec3 {
	return origin.Add(dir.Scale(h.T))
}

// Intersect calculates the intersection of a ray (O + t*D) with the sphere.
// D must be unit length. It returns the smaller root only when both roots are
// strictly positive; a tangent ray, a ray starting inside the sphere and a
// sphere behind the origin are all misses.
func (s *Sphere) Intersect(O, D vectors.Vec3) (float64, bool) {
	// b = 2*oc·D, c = oc·oc - r^2, solve t^2 + b t + c = 0
	oc := O.Sub(s.Center)
	b := 2.0 * oc.Dot(D)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b + sqrtDisc) / 2.0
	t2 := (-b - sqrtDisc) / 2.0

	if t1 > 0 && t2 > 0 {
		return math.Min(t1, t2), true
	}
	return 0, false
}

// Nearest scans every object and returns the closest hit along the ray.
// Ties keep the earlier object. ok is false when nothing is hit.
func (sc *Scene) Nearest(origin, dir vectors.Vec3) (hit Hit, ok bool) {
	for i := range sc.Objects {
		t, hitObj := sc.Objects[i].Intersect(origin, dir)
		if !hitObj {
			continue
		}
		if !ok || t < hit.T {
			hit = Hit{Sphere: &sc.Objects[i], T: t}
			ok = true
		}
	}
	return hit, ok
}
