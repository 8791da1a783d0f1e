package dial

import "math"

// CubicBezier is a CSS-style timing function with control points
// (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// spinCurve is the easing of the expiry spin.
var spinCurve = CubicBezier{X1: 0.2, Y1: 0.8, X2: 0.2, Y2: 1}

// SpinEase maps spin progress in [0,1] to rotation progress.
func SpinEase(t float64) float64 { return spinCurve.At(t) }

func bezier(a, b, t float64) float64 {
	// B(t) for P0=0, P3=1.
	u := 1 - t
	return 3*u*u*t*a + 3*u*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	u := 1 - t
	return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
}

// At solves x(s) = t for s and returns y(s).
func (c CubicBezier) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	s := t
	for i := 0; i < 8; i++ {
		x := bezier(c.X1, c.X2, s) - t
		if math.Abs(x) < 1e-7 {
			return bezier(c.Y1, c.Y2, s)
		}
		d := bezierSlope(c.X1, c.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
		if s < 0 || s > 1 {
			break
		}
	}
	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < 40; i++ {
		x := bezier(c.X1, c.X2, s)
		if math.Abs(x-t) < 1e-7 {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(c.Y1, c.Y2, s)
}
