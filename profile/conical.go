package profile

import (
	"math"

	"github.com/abcdmku/hornprofiles/hornmath"
	"github.com/abcdmku/hornprofiles/params"
)

// Conical generates straight-wall horns: half-width and half-height each
// interpolate linearly from throat to mouth over [0, length], so the wall
// slope (flare angle) is constant per axis.
//
// CalculatedValues: flareAngle (legacy, equals the width value),
// flareAngleWidth, flareAngleHeight (degrees), expansionRateWidth,
// expansionRateHeight (tangents of the flare angles), throatArea,
// mouthArea (width·height/4, an ellipse-area proxy), areaExpansionRatio.
type Conical struct{}

// Type returns TypeConical.
func (Conical) Type() string { return TypeConical }

// Defaults returns the conventional default parameter set.
func (Conical) Defaults() params.HornParams { return params.Defaults() }

// Validate reports every violation in p.
func (Conical) Validate(p params.HornParams) error { return params.Validate(p) }

// Generate computes the conical curve. Points is the per-sample mean of
// the half-width and half-height profiles.
func (Conical) Generate(p params.HornParams) (*Result, error) {
	np, err := prepare(p)
	if err != nil {
		return nil, err
	}

	n := np.Resolution

	halfTW, halfTH := np.ThroatWidth/2, np.ThroatHeight/2
	halfMW, halfMH := np.MouthWidth/2, np.MouthHeight/2

	points := make([]Point, 0, n+1)
	widths := make([]Point, 0, n+1)
	heights := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		// i==n must yield exactly length.
		t := float64(i) / float64(n)
		x := np.Length * t
		hw := hornmath.Lerp(halfTW, halfMW, t)
		hh := hornmath.Lerp(halfTH, halfMH, t)

		widths = append(widths, Point{X: x, Y: hw})
		heights = append(heights, Point{X: x, Y: hh})
		points = append(points, Point{X: x, Y: (hw + hh) / 2})
	}

	flareW := math.Atan((halfMW - halfTW) / np.Length)
	flareH := math.Atan((halfMH - halfTH) / np.Length)

	throatArea := np.ThroatWidth * np.ThroatHeight / 4
	mouthArea := np.MouthWidth * np.MouthHeight / 4

	res := &Result{
		Points:        points,
		WidthProfile:  widths,
		HeightProfile: heights,
		Metadata: Metadata{
			ProfileType: TypeConical,
			Parameters:  np,
			CalculatedValues: map[string]float64{
				KeyFlareAngle:          hornmath.RadToDeg(flareW),
				KeyFlareAngleWidth:     hornmath.RadToDeg(flareW),
				KeyFlareAngleHeight:    hornmath.RadToDeg(flareH),
				KeyExpansionRateWidth:  math.Tan(flareW),
				KeyExpansionRateHeight: math.Tan(flareH),
				KeyThroatArea:          throatArea,
				KeyMouthArea:           mouthArea,
				KeyAreaExpansionRatio:  mouthArea / throatArea,
			},
		},
	}

	attachShape(res, np, func(x float64) (float64, float64) {
		t := x / np.Length

		return hornmath.Lerp(np.ThroatWidth, np.MouthWidth, t),
			hornmath.Lerp(np.ThroatHeight, np.MouthHeight, t)
	})

	return res, nil
}
