package profile

import (
	"math"

	"github.com/abcdmku/hornprofiles/hornmath"
	"github.com/abcdmku/hornprofiles/params"
)

// sphericalTFactor selects the hyperbolic (Webster) horn case of the
// hyperbolic-exponential family.
const sphericalTFactor = 1.0

// mouthTolerance is the gap below the mouth radius at which the final
// sample triggers the smoothing pass.
const mouthTolerance = 0.01

// Spherical generates hyperbolic-wave horns: the cross-sectional area
// follows S(x) = S₀·(cosh(k·x/2) + T·sinh(k·x/2))² with T=1 and
// k = 4π·fc/c driven by the acoustic cutoff. Circular sections only; the
// radius at each sample is √(S/π) clamped into [throat, mouth].
//
// CalculatedValues: flareConstant (k), waveRadius (c/(2π·fc)), tFactor,
// throatArea, mouthArea (circle areas), areaExpansionRatio,
// volumeExpansionRatio (mouth/throat radius ratio cubed).
type Spherical struct{}

// Type returns TypeSpherical.
func (Spherical) Type() string { return TypeSpherical }

// Defaults returns the conventional default parameter set.
func (Spherical) Defaults() params.HornParams { return params.Defaults() }

// Validate reports every violation in p.
func (Spherical) Validate(p params.HornParams) error { return params.Validate(p) }

// Generate computes the spherical curve.
func (Spherical) Generate(p params.HornParams) (*Result, error) {
	np, err := prepare(p)
	if err != nil {
		return nil, err
	}

	speed := np.SpeedMMPerSec()
	k := hornmath.FlareConstant(np.CutoffFrequency, speed)
	throatArea := hornmath.CircleArea(np.ThroatRadius)
	mouthArea := hornmath.CircleArea(np.MouthRadius)

	n := np.Resolution

	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		// i==n must yield exactly length.
		x := np.Length * (float64(i) / float64(n))
		g := math.Cosh(k*x/2) + sphericalTFactor*math.Sinh(k*x/2)
		r := hornmath.AreaToRadius(throatArea * g * g)
		r = hornmath.Clamp(r, np.ThroatRadius, np.MouthRadius)
		points = append(points, Point{X: x, Y: r})
	}

	smoothToMouth(points, np.MouthRadius, n)

	radiusRatio := np.MouthRadius / np.ThroatRadius

	return &Result{
		Points: points,
		Metadata: Metadata{
			ProfileType: TypeSpherical,
			Parameters:  np,
			CalculatedValues: map[string]float64{
				KeyFlareConstant:        k,
				KeyWaveRadius:           speed / (2 * math.Pi * np.CutoffFrequency),
				KeyTFactor:              sphericalTFactor,
				KeyThroatArea:           throatArea,
				KeyMouthArea:            mouthArea,
				KeyAreaExpansionRatio:   mouthArea / throatArea,
				KeyVolumeExpansionRatio: radiusRatio * radiusRatio * radiusRatio,
			},
		},
	}, nil
}

// smoothToMouth re-interpolates the tail of the curve up to exactly the
// mouth radius when clamping left the final sample short of it. The
// window is the last ⌊resolution/10⌋ samples, at least one. This is a
// heuristic patch over the clamp, not part of the area law; the wall
// slope can jump where the window begins.
func smoothToMouth(points []Point, mouth float64, resolution int) {
	last := points[len(points)-1].Y
	if math.Abs(last-mouth) <= mouthTolerance || last >= mouth {
		return
	}

	window := resolution / 10
	if window < 1 {
		window = 1
	}
	start := len(points) - 1 - window
	if start < 0 {
		start = 0
	}

	base := points[start].Y
	span := float64(len(points) - 1 - start)
	for i := start + 1; i < len(points); i++ {
		points[i].Y = hornmath.Lerp(base, mouth, float64(i-start)/span)
	}
}
