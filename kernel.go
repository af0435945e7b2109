package mandelzoom

import "runtime"

// MaxIterations caps the escape-time loop. 255 trades boundary detail for
// frame rate; a count that reaches it is treated as inside the set.
const MaxIterations = 255

// Kernel is the pixel evaluation strategy. One call evaluates two
// horizontally adjacent pixels sharing the imaginary coordinate ci and
// returns their escape iteration counts. Implementations must agree with
// EscapeIterations for every point.
type Kernel interface {
	EvaluatePair(cr0, cr1, ci float64, maxIter int) (n0, n1 int)
}

// DetectKernel picks the kernel for the running architecture: the two-lane
// kernel on 64-bit targets, the scalar one elsewhere, where the extra lane
// state spills registers.
func DetectKernel() Kernel {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return PairKernel{}
	default:
		return ScalarKernel{}
	}
}

// EscapeIterations runs the escape-time recurrence z ← z² + c for
// c = cr + ci·i starting from z = 0 and returns the number of completed
// steps before |z|² reached 4, or maxIter if the orbit stayed bounded that
// long. The escape test runs before each step, so with a positive cap every
// point yields at least 1.
func EscapeIterations(cr, ci float64, maxIter int) int {
	var zr, zi float64
	n := 0
	for ; n < maxIter; n++ {
		zr2 := zr * zr
		zi2 := zi * zi
		if zr2+zi2 >= 4 {
			break
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}
	return n
}

// ScalarKernel evaluates one pixel at a time. It is the reference strategy
// and the portable fallback.
type ScalarKernel struct{}

func (ScalarKernel) EvaluatePair(cr0, cr1, ci float64, maxIter int) (int, int) {
	return EscapeIterations(cr0, ci, maxIter), EscapeIterations(cr1, ci, maxIter)
}

// PairKernel steps both pixels through the recurrence together and stops as
// soon as neither orbit remains bounded. A lane's count freezes once its
// orbit escapes; the lane itself keeps stepping, which stays harmless even
// after the escaped orbit overflows, because the bounded-orbit comparison
// is false for ±Inf and NaN alike.
type PairKernel struct{}

func (PairKernel) EvaluatePair(cr0, cr1, ci float64, maxIter int) (int, int) {
	cr := [2]float64{cr0, cr1}
	var zr, zi [2]float64
	var n [2]int
	for step := 0; step < maxIter; step++ {
		var zr2, zi2 [2]float64
		active := false
		for l := 0; l < 2; l++ {
			zr2[l] = zr[l] * zr[l]
			zi2[l] = zi[l] * zi[l]
			if zr2[l]+zi2[l] < 4 {
				n[l]++
				active = true
			}
		}
		if !active {
			break
		}
		for l := 0; l < 2; l++ {
			zi[l] = 2*zr[l]*zi[l] + ci
			zr[l] = zr2[l] - zi2[l] + cr[l]
		}
	}
	return n[0], n[1]
}
