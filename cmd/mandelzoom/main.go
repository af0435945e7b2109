// mandelzoom opens a desktop window and continuously zooms into the
// Mandelbrot set. A left click retargets the zoom onto the clicked point;
// Escape quits.

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"mandelzoom"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	fullscreen := flag.Bool("fullscreen", false, "render at the display's native resolution")
	target := flag.String("target", "classic", "zoom target, one of: "+strings.Join(mandelzoom.LandmarkNames(), ", "))
	decay := flag.Float64("decay", mandelzoom.DefaultZoomDecay, "per-frame zoom decay factor")
	workers := flag.Int("workers", 0, "render goroutines (0 = logical CPUs)")
	hud := flag.Bool("hud", true, "overlay fps/center/zoom readout")
	flag.Parse()

	view, ok := mandelzoom.LandmarkByName(*target)
	if !ok {
		return fmt.Errorf("unknown target %q, available: %s", *target, strings.Join(mandelzoom.LandmarkNames(), ", "))
	}

	size := mandelzoom.FrameSize{Width: *width, Height: *height}
	if *fullscreen {
		size.Width, size.Height = ebiten.ScreenSizeInFullscreen()
		ebiten.SetFullscreen(true)
	}

	g, err := newGame(view, size, *decay, *workers, *hud)
	if err != nil {
		return err
	}
	log.Printf("rendering %dx%d with %d workers (%T)", size.Width, size.Height, g.renderer.Workers(), g.renderer.Kernel())

	ebiten.SetWindowSize(size.Width, size.Height)
	ebiten.SetWindowTitle("Mandelbrot - Click to change zoom target")
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
