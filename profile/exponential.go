package profile

import (
	"math"

	"github.com/abcdmku/hornprofiles/hornmath"
	"github.com/abcdmku/hornprofiles/params"
)

// Exponential generates horns whose half-dimensions follow
// r(x) = r₀·exp(k·x/2), with k solved independently per axis so the curve
// hits the mouth dimension exactly: k = 2·ln(r_mouth/r_throat)/length.
// A purely circular parameterization reduces to the legacy single-radius
// form because both axes then carry the same k.
//
// CalculatedValues: flareConstant (mean of the per-axis constants),
// flareConstantWidth, flareConstantHeight, theoreticalFlareConstant
// (4π·fc/c from the acoustic parameters alone, for comparison),
// actualCutoffFrequency (back-derived from the fitted mean k),
// expansionFactor (exp(k)), throatArea, mouthArea, areaExpansionRatio,
// volumeExpansionRatio (area ratio^3/2, the characteristic volume ratio).
type Exponential struct{}

// Type returns TypeExponential.
func (Exponential) Type() string { return TypeExponential }

// Defaults returns the conventional default parameter set.
func (Exponential) Defaults() params.HornParams { return params.Defaults() }

// Validate reports every violation in p.
func (Exponential) Validate(p params.HornParams) error { return params.Validate(p) }

// Generate computes the exponential curve. Points is the per-sample mean
// of the half-width and half-height profiles.
func (Exponential) Generate(p params.HornParams) (*Result, error) {
	np, err := prepare(p)
	if err != nil {
		return nil, err
	}

	kW, err := fitFlareConstant(np.ThroatWidth, np.MouthWidth, np.Length)
	if err != nil {
		return nil, err
	}
	kH, err := fitFlareConstant(np.ThroatHeight, np.MouthHeight, np.Length)
	if err != nil {
		return nil, err
	}
	k := (kW + kH) / 2

	n := np.Resolution
	halfTW, halfTH := np.ThroatWidth/2, np.ThroatHeight/2

	points := make([]Point, 0, n+1)
	widths := make([]Point, 0, n+1)
	heights := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		// i==n must yield exactly length.
		x := np.Length * (float64(i) / float64(n))
		hw := halfTW * math.Exp(kW*x/2)
		hh := halfTH * math.Exp(kH*x/2)

		widths = append(widths, Point{X: x, Y: hw})
		heights = append(heights, Point{X: x, Y: hh})
		points = append(points, Point{X: x, Y: (hw + hh) / 2})
	}

	speed := np.SpeedMMPerSec()
	throatArea := np.ThroatWidth * np.ThroatHeight / 4
	mouthArea := np.MouthWidth * np.MouthHeight / 4
	areaRatio := mouthArea / throatArea

	res := &Result{
		Points:        points,
		WidthProfile:  widths,
		HeightProfile: heights,
		Metadata: Metadata{
			ProfileType: TypeExponential,
			Parameters:  np,
			CalculatedValues: map[string]float64{
				KeyFlareConstant:            k,
				KeyFlareConstantWidth:       kW,
				KeyFlareConstantHeight:      kH,
				KeyTheoreticalFlareConstant: hornmath.FlareConstant(np.CutoffFrequency, speed),
				KeyActualCutoffFrequency:    hornmath.CutoffForFlare(k, speed),
				KeyExpansionFactor:          math.Exp(k),
				KeyThroatArea:               throatArea,
				KeyMouthArea:                mouthArea,
				KeyAreaExpansionRatio:       areaRatio,
				KeyVolumeExpansionRatio:     math.Pow(areaRatio, 1.5),
			},
		},
	}

	attachShape(res, np, func(x float64) (float64, float64) {
		return np.ThroatWidth * math.Exp(kW*x/2),
			np.ThroatHeight * math.Exp(kH*x/2)
	})

	return res, nil
}

// fitFlareConstant solves k so that throat·exp(k·length/2) == mouth:
// k = 2·ln(mouth/throat)/length. The log guard cannot trip on validated
// input (both dimensions are positive) but the error is propagated rather
// than swallowed.
func fitFlareConstant(throat, mouth, length float64) (float64, error) {
	ratio, err := hornmath.SafeDivide(mouth, throat)
	if err != nil {
		return 0, err
	}
	ln, err := hornmath.SafeLog(ratio)
	if err != nil {
		return 0, err
	}

	return 2 * ln / length, nil
}
