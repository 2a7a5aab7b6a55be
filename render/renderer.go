package render

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/framebuffer"
	"github.com/echoflaresat/spheretrace/scene"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Renderer shades pixels of a fixed scene. It holds no mutable state, so
// ShadePixel may be called from any number of goroutines.
type Renderer struct {
	scene  *scene.Scene
	camera Camera
	opts   Options
}

// NewRenderer validates cfg and prepares a renderer for it. Zero ShadowBias
// and ShininessDivisor take their defaults.
func NewRenderer(cfg scene.Config, opts Options) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.ShadowBias == 0 {
		opts.ShadowBias = DefaultShadowBias
	}
	if opts.ShininessDivisor == 0 {
		opts.ShininessDivisor = DefaultShininessDivisor
	}
	return &Renderer{
		scene:  cfg.Scene(),
		camera: NewCamera(cfg.Camera, cfg.Width, cfg.Height),
		opts:   opts,
	}, nil
}

func (r *Renderer) Camera() Camera {
	return r.camera
}

// TraceRay follows a unit-length ray from the camera. ok is false when the ray
// hits nothing. Occluded samples carry only the ambient term.
func (r *Renderer) TraceRay(dir vectors.Vec3) (Sample, bool) {
	origin := r.camera.Position
	hit, ok := r.scene.Nearest(origin, dir)
	if !ok {
		return Sample{}, false
	}

	light := r.scene.Light
	ctx := NewRayContext(origin, dir, hit, light, r.opts.ShadowBias)
	s := Sample{RayContext: ctx}

	if blocker, blocked := r.scene.Nearest(ctx.ShiftedPoint, ctx.LightDir); blocked && blocker.T < ctx.LightDistance {
		s.Shadowed = true
		s.Lighting = Lighting{Ambient: Ambient(light, hit.Sphere.Material)}
		return s, true
	}

	s.Lighting = Illuminate(ctx, light, r.opts.ShininessDivisor)
	return s, true
}

// ShadePixel returns the color of pixel (row, col). ok is false when the
// pixel keeps the background color.
func (r *Renderer) ShadePixel(row, col int) (colors.BGR, bool) {
	s, ok := r.TraceRay(r.camera.ComputeRay(row, col))
	if !ok {
		return colors.BGR{}, false
	}
	if s.Shadowed {
		if !r.opts.AmbientInShadow {
			return colors.BGR{}, false
		}
		return s.Lighting.Ambient.ClampMax(1.0).ToBGR(), true
	}
	return s.Lighting.Total().ToBGR(), true
}

func (r *Renderer) renderRow(fb *framebuffer.Framebuffer, row int) {
	pixels := fb.Row(row)
	for col := range pixels {
		if c, ok := r.ShadePixel(row, col); ok {
			pixels[col] = c
		}
	}
}

// Render allocates a framebuffer and fills it, rendering rows concurrently.
func (r *Renderer) Render() (*framebuffer.Framebuffer, error) {
	fb, err := framebuffer.New(r.camera.Width, r.camera.Height)
	if err != nil {
		return nil, err
	}

	workers := r.opts.workers()
	slog.Debug("rendering", "width", fb.Width, "height", fb.Height, "objects", len(r.scene.Objects), "workers", workers)

	progress := newProgress(r.opts.Progress, fb.Height)

	var g errgroup.Group
	g.SetLimit(workers)
	for row := 0; row < fb.Height; row++ {
		g.Go(func() error {
			r.renderRow(fb, row)
			progress.step()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fb, nil
}

// RenderScene builds a renderer for cfg and renders one frame.
func RenderScene(cfg scene.Config, opts Options) (*framebuffer.Framebuffer, error) {
	r, err := NewRenderer(cfg, opts)
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// progress prints " 10% " style milestones as rows complete.
type progress struct {
	mu        sync.Mutex
	w         io.Writer
	total     int
	done      int
	milestone int
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{w: w, total: total}
}

func (p *progress) step() {
	if p.w == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	pct := p.done * 100 / p.total
	for p.milestone < 100 && pct >= p.milestone {
		fmt.Fprintf(p.w, " %3d%% ", p.milestone)
		p.milestone += 10
	}
	if p.done == p.total {
		fmt.Fprintf(p.w, "100%% complete\n")
	}
}
