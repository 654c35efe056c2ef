package profile

import (
	"math"

	"github.com/abcdmku/hornprofiles/hornmath"
	"github.com/abcdmku/hornprofiles/params"
)

// Tractrix generates horns whose wall follows the classic tractrix
// construction with the tangent horizontal at the mouth (a = mouth
// radius). The defining relation runs from the mouth inward:
//
//	x(y) = a·ln((a + √(a²−y²))/y) − √(a²−y²)
//
// with x=0 at y=a. There is no closed form for y(x), so the curve is
// inverted by sampling y linearly from throat to mouth, mapping each y
// through x(y), and rescaling the axial span to the requested length.
// A final monotonicity pass repairs any residual numerical wobble in y.
//
// CalculatedValues: tractrixParameter (a), expansionRatio (mouth/throat
// area ratio), actualMouthRadius (the possibly repaired final sample),
// throatRadius, hornLength, pointCount.
type Tractrix struct{}

// Type returns TypeTractrix.
func (Tractrix) Type() string { return TypeTractrix }

// Defaults returns the conventional default parameter set.
func (Tractrix) Defaults() params.HornParams { return params.Defaults() }

// Validate reports every violation in p.
func (Tractrix) Validate(p params.HornParams) error { return params.Validate(p) }

// Generate computes the tractrix curve.
func (Tractrix) Generate(p params.HornParams) (*Result, error) {
	np, err := prepare(p)
	if err != nil {
		return nil, err
	}

	points := tractrixCurve(np.ThroatRadius, np.MouthRadius, np.Length, np.Resolution)

	radiusRatio := np.MouthRadius / np.ThroatRadius

	return &Result{
		Points: points,
		Metadata: Metadata{
			ProfileType: TypeTractrix,
			Parameters:  np,
			CalculatedValues: map[string]float64{
				KeyTractrixParameter: np.MouthRadius,
				KeyExpansionRatio:    radiusRatio * radiusRatio,
				KeyActualMouthRadius: points[len(points)-1].Y,
				KeyThroatRadius:      np.ThroatRadius,
				KeyHornLength:        np.Length,
				KeyPointCount:        float64(len(points)),
			},
		},
	}, nil
}

// tractrixCurve samples the tractrix between the throat and mouth radii.
//
// Procedure:
//  1. Degenerate inputs (mouth ≤ throat, or a single sample) fall back to
//     a straight interpolation — no tractrix is meaningful there.
//  2. Compute the raw axial span x(throat); a non-finite or non-positive
//     span marks a numerical failure and falls back the same way.
//  3. Sample y linearly throat→mouth over resolution+1 steps, map each
//     through x(y), flip so the throat sits at x=0, and rescale the span
//     to the physical length.
//  4. Walk the samples and force y non-decreasing.
func tractrixCurve(throat, mouth, length float64, resolution int) []Point {
	if mouth <= throat || resolution <= 1 {
		return straightCurve(throat, mouth, length, resolution)
	}

	a := mouth
	xThroat := tractrixX(a, throat)
	if math.IsNaN(xThroat) || math.IsInf(xThroat, 0) || xThroat <= 0 {
		return straightCurve(throat, mouth, length, resolution)
	}

	points := make([]Point, 0, resolution+1)
	for i := 0; i <= resolution; i++ {
		y := hornmath.Lerp(throat, mouth, float64(i)/float64(resolution))
		// Throat maps to x=0, mouth to x=xThroat; rescale to length.
		// Dividing before scaling makes the mouth endpoint collapse to
		// exactly 1·length.
		x := (xThroat - tractrixX(a, y)) / xThroat * length
		points = append(points, Point{X: x, Y: y})
	}

	for i := 1; i < len(points); i++ {
		if points[i].Y < points[i-1].Y {
			points[i].Y = points[i-1].Y
		}
	}

	return points
}

// tractrixX evaluates the tractrix relation x(y) for parameter a,
// measured from the mouth inward. At or above the asymptote (y ≥ a) the
// raw x is 0 by definition; the inversion argument a²−y² stays positive.
func tractrixX(a, y float64) float64 {
	if y >= a {
		return 0
	}

	d := hornmath.SafeSqrt(a*a - y*y)

	return a*math.Log((a+d)/y) - d
}

// straightCurve is the shared fallback: a linear interpolation between
// the throat and mouth radii over resolution+1 samples.
func straightCurve(throat, mouth, length float64, resolution int) []Point {
	if resolution < 1 {
		resolution = 1
	}

	points := make([]Point, 0, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		points = append(points, Point{
			X: t * length,
			Y: hornmath.Lerp(throat, mouth, t),
		})
	}

	return points
}
