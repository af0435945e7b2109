// Package mandelzoom renders the Mandelbrot set into caller-owned pixel
// buffers, one complete frame at a time, for continuously zooming viewers.
package mandelzoom

import (
	"fmt"
	"runtime"
	"sync"
	"time"
)

// black is the pixel word for points treated as inside the set.
const black = 0xFF000000

// PixelBuffer is a borrowed view of one frame's pixel memory: row-major,
// one 32-bit ARGB word per pixel, alpha always 0xFF. Pitch is the byte
// distance between row starts and may exceed 4×width; the padding past each
// row's pixels is never written. The renderer keeps no reference to the
// view after RenderFrame returns.
type PixelBuffer struct {
	Words []uint32
	Pitch int
}

// RowRange is a half-open band of frame rows handled by one worker.
type RowRange struct {
	Start, End int
}

// PartitionRows splits height rows into workers contiguous bands of
// height/workers rows each. The last band absorbs the division remainder,
// so the union of the bands is always exactly [0, height).
func PartitionRows(height, workers int) []RowRange {
	if workers < 1 {
		workers = 1
	}
	rows := height / workers
	bands := make([]RowRange, workers)
	for i := range bands {
		bands[i] = RowRange{Start: i * rows, End: (i + 1) * rows}
	}
	bands[workers-1].End = height
	return bands
}

// renderTask is the immutable work description handed to one worker for one
// frame.
type renderTask struct {
	view Viewport
	size FrameSize
	rows RowRange
	buf  PixelBuffer
}

// Renderer renders frames, fanning each one out across a fixed number of
// workers. RenderFrame must not be called concurrently with itself.
type Renderer struct {
	kernel  Kernel
	workers int
	maxIter int
}

// NewRenderer returns a renderer using the kernel picked for this
// architecture and one worker per logical CPU.
func NewRenderer() *Renderer {
	return NewRendererWith(DetectKernel(), runtime.NumCPU())
}

// NewRendererWith returns a renderer with an explicit kernel strategy and
// worker count. The worker count is clamped to at least 1.
func NewRendererWith(kernel Kernel, workers int) *Renderer {
	if workers < 1 {
		workers = 1
	}
	Logger().Info("renderer ready", "kernel", fmt.Sprintf("%T", kernel), "workers", workers)
	return &Renderer{kernel: kernel, workers: workers, maxIter: MaxIterations}
}

// Workers returns the number of row bands each frame is split into.
func (r *Renderer) Workers() int { return r.workers }

// Kernel returns the evaluation strategy in use.
func (r *Renderer) Kernel() Kernel { return r.kernel }

// RenderFrame renders one frame of view into buf and returns after every
// worker has finished, so on a nil error the buffer holds the complete
// frame. buf must hold size.Height full rows of Pitch bytes.
func (r *Renderer) RenderFrame(buf PixelBuffer, size FrameSize, view Viewport) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("frame size %dx%d: dimensions must be positive", size.Width, size.Height)
	}
	if buf.Pitch%4 != 0 || buf.Pitch < 4*size.Width {
		return fmt.Errorf("pitch %d bytes: need a multiple of 4 covering %d pixels", buf.Pitch, size.Width)
	}
	if need := size.Height * (buf.Pitch / 4); len(buf.Words) < need {
		return fmt.Errorf("pixel buffer holds %d words, frame needs %d", len(buf.Words), need)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for _, rows := range PartitionRows(size.Height, r.workers) {
		if rows.Start == rows.End {
			continue
		}
		wg.Add(1)
		go func(t renderTask) {
			defer wg.Done()
			r.renderRows(t)
		}(renderTask{view: view, size: size, rows: rows, buf: buf})
	}
	wg.Wait()
	Logger().Debug("frame rendered", "zoom", view.Zoom, "took", time.Since(start))
	return nil
}

// renderRows fills the task's row band. Pixels are evaluated two at a time
// through the kernel; a pair whose points both sit in the known interior is
// painted black without invoking it.
func (r *Renderer) renderRows(t renderTask) {
	xScale, yScale := t.view.scales(t.size)
	halfW := float64(t.size.Width) / 2
	halfH := float64(t.size.Height) / 2
	stride := t.buf.Pitch / 4

	for y := t.rows.Start; y < t.rows.End; y++ {
		row := t.buf.Words[y*stride : y*stride+t.size.Width]
		ci := t.view.CenterI + (float64(y)-halfH)*yScale

		x := 0
		for ; x+1 < t.size.Width; x += 2 {
			cr0 := t.view.CenterR + (float64(x)-halfW)*xScale
			cr1 := t.view.CenterR + (float64(x+1)-halfW)*xScale
			if InsideCardioidOrBulb(cr0, ci) && InsideCardioidOrBulb(cr1, ci) {
				row[x] = black
				row[x+1] = black
				continue
			}
			n0, n1 := r.kernel.EvaluatePair(cr0, cr1, ci, r.maxIter)
			row[x] = ColorAt(n0, r.maxIter).ARGB()
			row[x+1] = ColorAt(n1, r.maxIter).ARGB()
		}
		// Odd width leaves a final unpaired pixel.
		for ; x < t.size.Width; x++ {
			cr := t.view.CenterR + (float64(x)-halfW)*xScale
			if InsideCardioidOrBulb(cr, ci) {
				row[x] = black
				continue
			}
			row[x] = ColorAt(EscapeIterations(cr, ci, r.maxIter), r.maxIter).ARGB()
		}
	}
}
