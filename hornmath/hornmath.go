package hornmath

import (
	"errors"
	"math"
)

// Epsilon is the magnitude below which a denominator is treated as zero.
const Epsilon = 1e-12

// Sentinel errors raised by the guarded helpers. Both indicate a genuine
// numerical impossibility in the caller's input, never a transient state.
var (
	// ErrLogDomain indicates a logarithm of a non-positive value.
	ErrLogDomain = errors.New("hornmath: logarithm argument must be positive")

	// ErrDivideByZero indicates a denominator with magnitude below Epsilon.
	ErrDivideByZero = errors.New("hornmath: denominator magnitude below epsilon")
)

// SafeLog returns ln(x), or ErrLogDomain when x ≤ 0.
func SafeLog(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrLogDomain
	}

	return math.Log(x), nil
}

// SafeDivide returns num/den, or ErrDivideByZero when |den| < Epsilon.
func SafeDivide(num, den float64) (float64, error) {
	if math.Abs(den) < Epsilon {
		return 0, ErrDivideByZero
	}

	return num / den, nil
}

// SafeSqrt returns √x, clamping negative arguments to zero. Generators feed
// it squared-radius differences that can round slightly below zero.
func SafeSqrt(x float64) float64 {
	if x < 0 {
		return 0
	}

	return math.Sqrt(x)
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Lerp linearly interpolates between a and b: a at t=0, b at t=1.
// t is not clamped; callers own the parameter range.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// CircleArea returns π·r² for radius r (mm → mm²).
func CircleArea(r float64) float64 {
	return math.Pi * r * r
}

// AreaToRadius inverts CircleArea: √(s/π). Negative areas clamp to zero.
func AreaToRadius(s float64) float64 {
	return SafeSqrt(s / math.Pi)
}

// FlareConstant returns the acoustic flare constant k = 4π·fc/c for a
// cutoff frequency in Hz and speed of sound in mm/s. Units: 1/mm.
func FlareConstant(cutoffHz, speedMMPerSec float64) float64 {
	return 4 * math.Pi * cutoffHz / speedMMPerSec
}

// CutoffForFlare inverts FlareConstant: fc = k·c/(4π).
func CutoffForFlare(k, speedMMPerSec float64) float64 {
	return k * speedMMPerSec / (4 * math.Pi)
}

// MetersPerSecToMM converts m/s to mm/s.
func MetersPerSecToMM(v float64) float64 {
	return v * 1000
}
