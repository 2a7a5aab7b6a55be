package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/echoflaresat/spheretrace/vectors"
)

func TestIntersectTowardCenter(t *testing.T) {
	tests := []struct {
		name   string
		origin vectors.Vec3
		center vectors.Vec3
		radius float64
	}{
		{"large sphere", vectors.New(0, 0, 1), vectors.New(-0.2, 0, -1), 0.7},
		{"small sphere", vectors.New(3, 2, 1), vectors.New(0.1, -0.3, 0), 0.1},
		{"far off axis", vectors.New(-10, 4, 7), vectors.New(2, 2, 2), 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sphere{Center: tt.center, Radius: tt.radius}
			dir := tt.center.Sub(tt.origin).Normalize()
			got, ok := s.Intersect(tt.origin, dir)
			if !ok {
				t.Fatalf("ray toward center missed")
			}
			want := vectors.Distance(tt.origin, tt.center) - tt.radius
			if math.Abs(got-want) > 1e-4 {
				t.Errorf("t = %g, want %g", got, want)
			}
		})
	}
}

func TestIntersectAxial(t *testing.T) {
	s := Sphere{Center: vectors.New(0, 0, -1), Radius: 0.7}
	got, ok := s.Intersect(vectors.New(0, 0, 1), vectors.New(0, 0, -1))
	if !ok {
		t.Fatal("axial ray missed")
	}
	if math.Abs(got-1.3) > 1e-4 {
		t.Errorf("t = %g, want 1.3", got)
	}
}

func TestIntersectMisses(t *testing.T) {
	s := Sphere{Center: vectors.New(0, 0, 0), Radius: 1}
	tests := []struct {
		name   string
		origin vectors.Vec3
		dir    vectors.Vec3
	}{
		{"tangent", vectors.New(1, 0, 5), vectors.New(0, 0, -1)},
		{"passes beside", vectors.New(2, 0, 5), vectors.New(0, 0, -1)},
		{"behind origin", vectors.New(0, 0, 5), vectors.New(0, 0, 1)},
		{"origin inside", vectors.New(0, 0, 0.5), vectors.New(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := s.Intersect(tt.origin, tt.dir); ok {
				t.Errorf("expected miss, got t = %g", d)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	sc := &Scene{Objects: []Sphere{
		{Center: vectors.New(0, 0, -5), Radius: 1},
		{Center: vectors.New(0, 0, -3), Radius: 1},
		{Center: vectors.New(4, 0, -3), Radius: 1},
	}}
	origin := vectors.Zero()

	hit, ok := sc.Nearest(origin, vectors.New(0, 0, -1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Sphere != &sc.Objects[1] {
		t.Errorf("nearest = %+v, want object 1", hit.Sphere)
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("T = %g, want 2", hit.T)
	}
	if p := hit.Point(origin, vectors.New(0, 0, -1)); vectors.Distance(p, vectors.New(0, 0, -2)) > 1e-9 {
		t.Errorf("Point = %v", p)
	}

	if hit, ok := sc.Nearest(origin, vectors.New(0, 1, 0)); ok {
		t.Errorf("expected no hit, got %+v", hit)
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	sc := &Scene{Objects: []Sphere{
		{Center: vectors.New(0, 0, -3), Radius: 1},
		{Center: vectors.New(0, 0, -3), Radius: 1},
	}}
	hit, ok := sc.Nearest(vectors.Zero(), vectors.New(0, 0, -1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Sphere != &sc.Objects[0] {
		t.Errorf("tie resolved to the later object")
	}
}

func TestDefaultSceneMiss(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.Scene()
	// straight up from the camera clears every sphere
	if hit, ok := sc.Nearest(cfg.Camera, vectors.New(0, 1, 0)); ok {
		t.Errorf("expected no hit, got %+v", hit)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Objects[2].Radius = -0.1
	if err := cfg.Validate(); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("err = %v, want ErrNegativeRadius", err)
	}

	cfg = DefaultConfig()
	cfg.Width = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}

	cfg = DefaultConfig()
	cfg.Objects = nil
	if err := cfg.Validate(); !errors.Is(err, ErrNoObjects) {
		t.Errorf("err = %v, want ErrNoObjects", err)
	}
}

func TestSceneCopiesObjects(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.Scene()
	cfg.Objects[0].Radius = 42
	if sc.Objects[0].Radius == 42 {
		t.Error("Scene shares the config's object slice")
	}
}
