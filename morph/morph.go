package morph

import (
	"math"

	"github.com/abcdmku/hornprofiles/hornmath"
	"github.com/abcdmku/hornprofiles/params"
)

// DimensionsFunc reports the full cross-section width and height (mm) at
// axial position x. Each profile family supplies its own expansion law.
type DimensionsFunc func(x float64) (width, height float64)

// ShapePoint describes the cross-section at one axial sample.
type ShapePoint struct {
	// X is the axial position, mm from the throat.
	X float64

	// Shape is the throat kind at Factor 0, the mouth kind at Factor 1,
	// and params.ShapeMorphed strictly between.
	Shape params.Shape

	// Factor is the blend weight in [0,1] between the throat and mouth
	// cross-section kinds.
	Factor float64

	// Width and Height are the full envelope dimensions at X, mm.
	Width  float64
	Height float64
}

// TransitionMetadata summarizes the blend region actually used.
type TransitionMetadata struct {
	// HasTransition is false when throat and mouth kinds are identical.
	HasTransition bool

	// Start and End bound the transition region along the axis, mm.
	Start float64
	End   float64

	// Function is the easing applied inside the region.
	Function params.MorphFunc
}

// Blend applies the easing f to a normalized transition position t.
// t outside [0,1] clamps to the nearest endpoint.
func Blend(f params.MorphFunc, t float64) float64 {
	t = hornmath.Clamp(t, 0, 1)

	switch f {
	case params.MorphCubic:
		return t * t * (3 - 2*t)
	case params.MorphSigmoid:
		return 1 / (1 + math.Exp(-6*(t-0.5)))
	default:
		return t
	}
}

// Profile samples the cross-section blend at resolution+1 axial positions
// over [0, length]. The factor follows the transition region [0,
// transitionLength]; the envelope comes from dims at every sample.
func Profile(np params.Normalized, dims DimensionsFunc) []ShapePoint {
	n := np.Resolution
	same := np.SameShape()

	pts := make([]ShapePoint, 0, n+1)
	for i := 0; i <= n; i++ {
		// i==n must yield exactly length, or a full-length transition
		// would mislabel its final sample.
		x := np.Length * (float64(i) / float64(n))
		w, h := dims(x)

		sp := ShapePoint{X: x, Width: w, Height: h}
		switch {
		case same:
			sp.Factor, sp.Shape = 0, np.ThroatShape
		case x <= 0:
			sp.Factor, sp.Shape = 0, np.ThroatShape
		case x >= np.TransitionLength:
			sp.Factor, sp.Shape = 1, np.MouthShape
		default:
			sp.Factor = Blend(np.Morphing, x/np.TransitionLength)
			sp.Shape = params.ShapeMorphed
		}
		pts = append(pts, sp)
	}

	return pts
}

// Transition reports the blend region for the record np. When throat and
// mouth kinds are identical there is no transition and the zero bounds
// are returned with HasTransition=false.
func Transition(np params.Normalized) TransitionMetadata {
	if np.SameShape() {
		return TransitionMetadata{Function: np.Morphing}
	}

	return TransitionMetadata{
		HasTransition: true,
		Start:         0,
		End:           np.TransitionLength,
		Function:      np.Morphing,
	}
}
