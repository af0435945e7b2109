package mandelzoom

import (
	"math"
	"testing"
)

func TestPointAtCenterPixel(t *testing.T) {
	size := FrameSize{Width: 800, Height: 600}
	v := DefaultViewport
	cr, ci := v.PointAt(400, 300, size)
	if cr != v.CenterR || ci != v.CenterI {
		t.Errorf("PointAt(400, 300) = (%v, %v), want the center (%v, %v)", cr, ci, v.CenterR, v.CenterI)
	}
}

func TestPointAtAxisScales(t *testing.T) {
	tests := []struct {
		name string
		size FrameSize
	}{
		{"4:3", FrameSize{Width: 800, Height: 600}},
		{"square", FrameSize{Width: 512, Height: 512}},
		{"wide", FrameSize{Width: 1920, Height: 1080}},
		{"tall", FrameSize{Width: 300, Height: 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{CenterR: -0.5, CenterI: 0.25, Zoom: 1}
			cr0, ci0 := v.PointAt(10, 10, tt.size)
			cr1, _ := v.PointAt(11, 10, tt.size)
			_, ci1 := v.PointAt(10, 11, tt.size)

			xStep := cr1 - cr0
			yStep := ci1 - ci0
			wantX := 4 * tt.size.Aspect() * v.Zoom / float64(tt.size.Width)
			wantY := 4 * v.Zoom / float64(tt.size.Width)
			if math.Abs(xStep-wantX) > 1e-12 {
				t.Errorf("horizontal step = %v, want %v", xStep, wantX)
			}
			if math.Abs(yStep-wantY) > 1e-12 {
				t.Errorf("vertical step = %v, want %v", yStep, wantY)
			}
			// Width is the common divisor, so the steps always differ by
			// exactly the aspect factor.
			if ratio := xStep / yStep; math.Abs(ratio-tt.size.Aspect()) > 1e-9 {
				t.Errorf("step ratio = %v, want aspect %v", ratio, tt.size.Aspect())
			}
		})
	}
}

func TestPointAtShrinksWithZoom(t *testing.T) {
	size := FrameSize{Width: 800, Height: 600}
	wide := Viewport{CenterR: -0.5, CenterI: 0, Zoom: 1}
	deep := Viewport{CenterR: -0.5, CenterI: 0, Zoom: 0.25}

	wideCr, _ := wide.PointAt(0, 0, size)
	deepCr, _ := deep.PointAt(0, 0, size)
	if math.Abs(deepCr-deep.CenterR) >= math.Abs(wideCr-wide.CenterR) {
		t.Errorf("corner offset at zoom 0.25 (%v) not closer to center than at zoom 1 (%v)",
			deepCr-deep.CenterR, wideCr-wide.CenterR)
	}
}

func TestAdvance(t *testing.T) {
	v := Viewport{CenterR: -0.5, CenterI: 0, Zoom: 1}
	v.Advance(0.985)
	if v.Zoom != 0.985 {
		t.Errorf("Zoom after one step = %v, want 0.985", v.Zoom)
	}

	want := v.Zoom
	for i := 0; i < 100; i++ {
		want *= 0.985
	}
	for i := 0; i < 100; i++ {
		v.Advance(0.985)
	}
	if v.Zoom != want {
		t.Errorf("Zoom after 100 more steps = %v, want %v", v.Zoom, want)
	}
	if v.CenterR != -0.5 || v.CenterI != 0 {
		t.Errorf("Advance moved the center to (%v, %v)", v.CenterR, v.CenterI)
	}
}

func TestRecenterTopLeftCorner(t *testing.T) {
	size := FrameSize{Width: 800, Height: 600}
	v := DefaultViewport
	origR, origI := v.CenterR, v.CenterI

	v.Recenter(0, 0, size)

	// Pixel (0,0) sits half a frame left and up of the center:
	// (0-400)*xScale = -2*aspect, (0-300)*yScale = -1.5 at zoom 1.
	wantDR := -2 * size.Aspect()
	wantDI := -1.5
	if got := v.CenterR - origR; math.Abs(got-wantDR) > 1e-12 {
		t.Errorf("center moved by %v along the real axis, want %v", got, wantDR)
	}
	if got := v.CenterI - origI; math.Abs(got-wantDI) > 1e-12 {
		t.Errorf("center moved by %v along the imaginary axis, want %v", got, wantDI)
	}
	if v.Zoom != DefaultViewport.Zoom {
		t.Errorf("Recenter changed zoom to %v", v.Zoom)
	}
}

func TestRecenterRoundTrip(t *testing.T) {
	// Recentering on a pixel makes that pixel's point the new center, so
	// mapping the center pixel afterwards returns the same point.
	size := FrameSize{Width: 801, Height: 601}
	v := Viewport{CenterR: -0.74, CenterI: 0.13, Zoom: 0.01}

	wantR, wantI := v.PointAt(123, 456, size)
	v.Recenter(123, 456, size)
	if v.CenterR != wantR || v.CenterI != wantI {
		t.Errorf("Recenter set (%v, %v), want (%v, %v)", v.CenterR, v.CenterI, wantR, wantI)
	}
}
