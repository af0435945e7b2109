package main

import (
	"fmt"
	"log"

	"mandelzoom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// game implements ebiten.Game. Each Update applies pending input, shrinks the
// viewport by one decay step, and renders it into the owned word buffer; Draw
// only converts and uploads pixels.
type game struct {
	renderer *mandelzoom.Renderer
	view     mandelzoom.Viewport
	size     mandelzoom.FrameSize
	decay    float64
	hud      bool

	buf   mandelzoom.PixelBuffer
	rgba  []byte
	frame *ebiten.Image
}

func newGame(view mandelzoom.Viewport, size mandelzoom.FrameSize, decay float64, workers int, hud bool) (*game, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d out of range", size.Width, size.Height)
	}

	var renderer *mandelzoom.Renderer
	if workers > 0 {
		renderer = mandelzoom.NewRendererWith(mandelzoom.DetectKernel(), workers)
	} else {
		renderer = mandelzoom.NewRenderer()
	}

	return &game{
		renderer: renderer,
		view:     view,
		size:     size,
		decay:    decay,
		hud:      hud,
		buf: mandelzoom.PixelBuffer{
			Words: make([]uint32, size.Width*size.Height),
			Pitch: size.Width * 4,
		},
		rgba:  make([]byte, size.Width*size.Height*4),
		frame: ebiten.NewImage(size.Width, size.Height),
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.view.Recenter(x, y, g.size)
		log.Printf("New center: (%f, %f)", g.view.CenterR, g.view.CenterI)
	}

	g.view.Advance(g.decay)
	return g.renderer.RenderFrame(g.buf, g.size, g.view)
}

func (g *game) Draw(screen *ebiten.Image) {
	for i, w := range g.buf.Words {
		g.rgba[4*i+0] = byte(w >> 16)
		g.rgba[4*i+1] = byte(w >> 8)
		g.rgba[4*i+2] = byte(w)
		g.rgba[4*i+3] = byte(w >> 24)
	}
	g.frame.WritePixels(g.rgba)
	screen.DrawImage(g.frame, nil)

	if g.hud {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("tps %0.1f fps %0.1f\ncenter (%.15f, %.15f)\nzoom %.3g  workers %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.view.CenterR, g.view.CenterI, g.view.Zoom, g.renderer.Workers()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.Width, g.size.Height
}
