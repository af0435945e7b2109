// mandelterm is a terminal Mandelbrot zoom viewer. Each character cell shows
// two vertically stacked pixels drawn with the upper half block glyph, so the
// frame is terminal columns wide and twice the terminal rows tall.

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"mandelzoom"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	fps := flag.Int("fps", 20, "frames per second")
	target := flag.String("target", "classic", "zoom target, one of: "+strings.Join(mandelzoom.LandmarkNames(), ", "))
	decay := flag.Float64("decay", mandelzoom.DefaultZoomDecay, "per-frame zoom decay factor")
	workers := flag.Int("workers", 0, "render goroutines (0 = logical CPUs)")
	flag.Parse()

	view, ok := mandelzoom.LandmarkByName(*target)
	if !ok {
		return fmt.Errorf("unknown target %q, available: %s", *target, strings.Join(mandelzoom.LandmarkNames(), ", "))
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	// The frame keeps the startup dimensions; a later resize repaints the
	// same frame instead of rescaling it.
	cols, rows := screen.Size()
	size := mandelzoom.FrameSize{Width: cols, Height: 2 * rows}
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("terminal size %dx%d out of range", cols, rows)
	}
	buf := mandelzoom.PixelBuffer{
		Words: make([]uint32, size.Width*size.Height),
		Pitch: size.Width * 4,
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	var buttons tcell.ButtonMask
	var pending [2]int
	hasPending := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				}
			case *tcell.EventMouse:
				// Recenter on the press edge only; motion events repeat the
				// button state while dragging.
				if ev.Buttons()&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
					x, y := ev.Position()
					pending = [2]int{x, 2 * y}
					hasPending = true
				}
				buttons = ev.Buttons()
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if hasPending {
				view.Recenter(pending[0], pending[1], size)
				hasPending = false
			}
			view.Advance(*decay)
			if err := renderer.RenderFrame(buf, size, view); err != nil {
				return err
			}
			drawFrame(screen, buf, size)
		}
	}
}

// drawFrame paints two pixel rows per cell row: the upper pixel as the half
// block foreground, the lower one as the cell background.
func drawFrame(screen tcell.Screen, buf mandelzoom.PixelBuffer, size mandelzoom.FrameSize) {
	stride := buf.Pitch / 4
	for cy := 0; cy < size.Height/2; cy++ {
		upper := buf.Words[2*cy*stride:]
		lower := buf.Words[(2*cy+1)*stride:]
		for x := 0; x < size.Width; x++ {
			style := tcell.StyleDefault.
				Foreground(wordColor(upper[x])).
				Background(wordColor(lower[x]))
			screen.SetContent(x, cy, '▀', nil, style)
		}
	}
	screen.Show()
}

func wordColor(w uint32) tcell.Color {
	return tcell.NewRGBColor(int32(w>>16&0xFF), int32(w>>8&0xFF), int32(w&0xFF))
}
