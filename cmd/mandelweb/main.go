// mandelweb serves a browser Mandelbrot zoom viewer. Frames are rendered
// server side and streamed to the page over a websocket; clicks travel the
// other way and retarget the zoom.

package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"mandelzoom"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", 800, "stream width in pixels")
	height := flag.Int("height", 600, "stream height in pixels")
	fps := flag.Int("fps", 30, "stream frames per second")
	target := flag.String("target", "classic", "zoom target, one of: "+strings.Join(mandelzoom.LandmarkNames(), ", "))
	decay := flag.Float64("decay", mandelzoom.DefaultZoomDecay, "per-frame zoom decay factor")
	workers := flag.Int("workers", 0, "render goroutines (0 = logical CPUs)")
	flag.Parse()

	view, ok := mandelzoom.LandmarkByName(*target)
	if !ok {
		return fmt.Errorf("unknown target %q, available: %s", *target, strings.Join(mandelzoom.LandmarkNames(), ", "))
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("frame size %dx%d out of range", *width, *height)
	}
	if *fps <= 0 {
		return fmt.Errorf("fps %d out of range", *fps)
	}

	var renderer *mandelzoom.Renderer
	if *workers > 0 {
		renderer = mandelzoom.NewRendererWith(mandelzoom.DetectKernel(), *workers)
	} else {
		renderer = mandelzoom.NewRenderer()
	}

	s := &streamer{
		renderer: renderer,
		view:     view,
		size:     mandelzoom.FrameSize{Width: *width, Height: *height},
		decay:    *decay,
		interval: time.Second / time.Duration(*fps),
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("embedded static dir: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handle)
	mux.Handle("/", http.FileServer(http.FS(static)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
