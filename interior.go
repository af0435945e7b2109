package mandelzoom

// InsideCardioidOrBulb reports whether c = cr + ci·i lies inside the main
// cardioid or the period-2 bulb of the Mandelbrot set. Points inside either
// shape never escape, so callers can skip iterating them. The test has no
// false positives; interior points outside these two shapes are not caught.
func InsideCardioidOrBulb(cr, ci float64) bool {
	// Period-2 bulb: the disc of radius 1/4 around -1.
	br := cr + 1
	if br*br+ci*ci < 0.0625 {
		return true
	}
	// Main cardioid.
	qr := cr - 0.25
	q := qr*qr + ci*ci
	return q*(q+qr) < 0.25*ci*ci
}
