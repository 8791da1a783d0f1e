package dial

import "math"

const (
	// DegreesPerSecond maps the countdown value onto ring rotation: one full
	// rotation per minute on the clock.
	DegreesPerSecond = 6.0
	// SpinDegrees is how far the rings travel during the expiry spin.
	SpinDegrees = 2520.0
)

// NormalizeAngle folds an angular difference into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// DragSeconds converts an angular step into a time step.
// Halves round towards positive infinity.
func DragSeconds(deltaAngle, sensitivity float64) int {
	return int(math.Floor(deltaAngle*sensitivity/(2*math.Pi)*60 + 0.5))
}

// ArcRotation is the ring rotation in degrees. progress is the fraction of
// the spin window elapsed and is ignored unless spinning.
func ArcRotation(remaining int, spinning bool, progress float64) float64 {
	base := float64(remaining) * DegreesPerSecond
	if !spinning {
		return base
	}
	return base + SpinDegrees*SpinEase(progress)
}

// ButtonPosition returns the offset of a segment control from the dial center.
func ButtonPosition(angleDeg, radius float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return radius * math.Cos(rad), radius * math.Sin(rad)
}

// DashOn reports whether the point at screen angle theta (radians, clockwise
// from +x) falls on a dash of ring r rotated by rotation degrees. Dashes start
// at twelve o'clock and run clockwise.
func DashOn(r Ring, theta, rotation float64) bool {
	period := r.Dash + r.Gap
	if period <= 0 {
		return true
	}
	phi := theta + math.Pi/2 - rotation*math.Pi/180
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	s := math.Mod(phi*r.Radius, period)
	return s < r.Dash
}
