package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/echoflaresat/spheretrace/framebuffer"
	"github.com/echoflaresat/spheretrace/imageio"
	"github.com/echoflaresat/spheretrace/render"
	"github.com/echoflaresat/spheretrace/scene"
)

type config struct {
	width, height *int
	workers       *int
	ambientShadow *bool
	showProgress  *bool
	out           *string
	verbose       *bool
	showHelp      *bool
}

func defineFlags() config {
	return config{
		width:  flag.Int("width", scene.DefaultWidth, "Output image width in pixels"),
		height: flag.Int("height", scene.DefaultHeight, "Output image height in pixels"),

		workers:       flag.Int("workers", runtime.GOMAXPROCS(0), "Rows rendered concurrently"),
		ambientShadow: flag.Bool("ambient-shadow", false, "Keep ambient light on shadowed surfaces"),
		showProgress:  flag.Bool("progress", false, "Print progress while rendering"),

		out: flag.String("out", "image.bmp", "Output path (.bmp, .png, .tif)"),

		verbose:  flag.Bool("v", false, "Verbose logging"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Sphere Renderer - renders the fixed sphere scene to an image

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Image Options", []string{"width", "height"})
	printGroup("Rendering Options", []string{"workers", "ambient-shadow", "progress"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"v", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-15s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}
	if *cfg.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = *cfg.width
	sceneCfg.Height = *cfg.height

	opts := render.DefaultOptions()
	opts.Workers = *cfg.workers
	opts.AmbientInShadow = *cfg.ambientShadow
	if *cfg.showProgress {
		opts.Progress = os.Stdout
	}

	fb, elapsed, err := renderImage(sceneCfg, opts)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("render complete", "width", fb.Width, "height", fb.Height, "elapsed", elapsed)

	if err := imageio.Save(*cfg.out, fb); err != nil {
		log.Fatalf("Failed to write %s: %v", *cfg.out, err)
	}
	slog.Info("wrote image", "path", *cfg.out)
}

// renderImage renders one frame and reports how long the render itself took.
func renderImage(cfg scene.Config, opts render.Options) (*framebuffer.Framebuffer, time.Duration, error) {
	r, err := render.NewRenderer(cfg, opts)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	fb, err := r.Render()
	if err != nil {
		return nil, 0, err
	}
	return fb, time.Since(start), nil
}
