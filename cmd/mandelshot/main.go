// mandelshot renders a single Mandelbrot frame and saves it as a PNG file.
// The viewport comes from a named landmark, optionally overridden per axis,
// and can be advanced N zoom steps first to reproduce "the view after N
// frames" of the animated viewers.

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"mandelzoom"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	width := flag.Int("width", 1920, "image width in pixels")
	height := flag.Int("height", 1080, "image height in pixels")
	target := flag.String("target", "classic", "zoom target, one of: "+strings.Join(mandelzoom.LandmarkNames(), ", "))
	cr := flag.Float64("cr", 0, "center real part (overrides target)")
	ci := flag.Float64("ci", 0, "center imaginary part (overrides target)")
	zoom := flag.Float64("zoom", 1, "zoom factor (overrides target)")
	frames := flag.Int("frames", 0, "zoom steps to apply before rendering")
	decay := flag.Float64("decay", mandelzoom.DefaultZoomDecay, "per-step zoom decay factor")
	workers := flag.Int("workers", 0, "render goroutines (0 = logical CPUs)")
	out := flag.String("o", "mandel.png", "output file")
	verbose := flag.Bool("v", false, "log renderer internals to stderr")
	flag.Parse()

	if *verbose {
		mandelzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Step 1: Resolve the viewport: named landmark first, explicit flags win.
	view, ok := mandelzoom.LandmarkByName(*target)
	if !ok {
		return fmt.Errorf("unknown target %q, available: %s", *target, strings.Join(mandelzoom.LandmarkNames(), ", "))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cr":
			view.CenterR = *cr
		case "ci":
			view.CenterI = *ci
		case "zoom":
			view.Zoom = *zoom
		}
	})
	for i := 0; i < *frames; i++ {
		view.Advance(*decay)
	}

	size := mandelzoom.FrameSize{Width: *width, Height: *height}
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("frame size %dx%d out of range", size.Width, size.Height)
	}

	var renderer *mandelzoom.Renderer
	if *workers > 0 {
		renderer = mandelzoom.NewRendererWith(mandelzoom.DetectKernel(), *workers)
	} else {
		renderer = mandelzoom.NewRenderer()
	}

	// Step 2: Render the frame.
	log.Printf("rendering %dx%d at center (%f, %f), zoom %g...", size.Width, size.Height, view.CenterR, view.CenterI, view.Zoom)
	buf := mandelzoom.PixelBuffer{
		Words: make([]uint32, size.Width*size.Height),
		Pitch: size.Width * 4,
	}
	if err := renderer.RenderFrame(buf, size, view); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	// Step 3: Convert the ARGB words to an image and save it.
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	for i, w := range buf.Words {
		img.Pix[4*i+0] = byte(w >> 16)
		img.Pix[4*i+1] = byte(w >> 8)
		img.Pix[4*i+2] = byte(w)
		img.Pix[4*i+3] = byte(w >> 24)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("rendered image saved to %q", *out)
	return nil
}
