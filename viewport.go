package mandelzoom

// Viewport is the region of the complex plane mapped onto the frame,
// described by its center point and a positive zoom scale. Smaller zoom
// means deeper magnification.
type Viewport struct {
	CenterR float64
	CenterI float64
	Zoom    float64
}

// FrameSize is the pixel size of the rendered frame, chosen once at startup
// and fixed for the life of the render loop.
type FrameSize struct {
	Width  int
	Height int
}

// Aspect returns the width to height ratio.
func (s FrameSize) Aspect() float64 {
	return float64(s.Width) / float64(s.Height)
}

// scales returns the complex-plane step per pixel along each axis. Width is
// the common divisor for both; the horizontal step additionally carries the
// aspect correction.
func (v Viewport) scales(size FrameSize) (xScale, yScale float64) {
	xScale = 4 * size.Aspect() * v.Zoom / float64(size.Width)
	yScale = 4 * v.Zoom / float64(size.Width)
	return xScale, yScale
}

// PointAt maps a pixel to the complex number shown there under this
// viewport. The pixel origin is the top-left corner of the frame.
func (v Viewport) PointAt(x, y int, size FrameSize) (cr, ci float64) {
	xScale, yScale := v.scales(size)
	cr = v.CenterR + (float64(x)-float64(size.Width)/2)*xScale
	ci = v.CenterI + (float64(y)-float64(size.Height)/2)*yScale
	return cr, ci
}

// Advance applies one frame of continuous zoom. A decay factor below 1
// zooms in.
func (v *Viewport) Advance(decay float64) {
	v.Zoom *= decay
}

// Recenter moves the viewport center to the complex point currently shown
// at pixel (x, y), leaving zoom unchanged.
func (v *Viewport) Recenter(x, y int, size FrameSize) {
	v.CenterR, v.CenterI = v.PointAt(x, y, size)
}
