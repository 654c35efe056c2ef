package params

// Shape names a supported transverse cross-section kind of the horn.
type Shape string

const (
	// ShapeCircle is a circular cross-section (equal width and height).
	ShapeCircle Shape = "circle"

	// ShapeEllipse is an elliptical cross-section.
	ShapeEllipse Shape = "ellipse"

	// ShapeSuperellipse is a superelliptical cross-section.
	ShapeSuperellipse Shape = "superellipse"

	// ShapeRectangular is a rectangular cross-section.
	ShapeRectangular Shape = "rectangular"

	// ShapeMorphed labels a sample strictly inside a shape transition.
	// It is a reporting sentinel, never a valid throat or mouth kind.
	ShapeMorphed Shape = "morphed"
)

// Supported reports whether s may appear as a throat or mouth cross-section.
func (s Shape) Supported() bool {
	switch s {
	case ShapeCircle, ShapeEllipse, ShapeSuperellipse, ShapeRectangular:
		return true
	default:
		return false
	}
}

// MorphFunc names the easing function applied inside a shape transition.
type MorphFunc string

const (
	// MorphLinear eases linearly: f(t) = t.
	MorphLinear MorphFunc = "linear"

	// MorphCubic eases with smoothstep: f(t) = t²(3−2t).
	MorphCubic MorphFunc = "cubic"

	// MorphSigmoid eases with a logistic curve: f(t) = 1/(1+e^(−6(t−0.5))).
	MorphSigmoid MorphFunc = "sigmoid"
)

// Valid reports whether f is one of the three supported easing functions.
func (f MorphFunc) Valid() bool {
	switch f {
	case MorphLinear, MorphCubic, MorphSigmoid:
		return true
	default:
		return false
	}
}

// DEFAULTS - single source of truth for absent-field behavior.
// Normalize MUST fill exactly these values.
const (
	// DefaultThroatRadius is the conventional throat radius, mm.
	DefaultThroatRadius = 25.0

	// DefaultMouthRadius is the conventional mouth radius, mm.
	DefaultMouthRadius = 300.0

	// DefaultLength is the conventional axial horn length, mm.
	DefaultLength = 500.0

	// DefaultResolution is the sample count; curves carry resolution+1 points.
	DefaultResolution = 100

	// DefaultCutoffFrequency is the acoustic cutoff, Hz.
	DefaultCutoffFrequency = 100.0

	// DefaultSpeedOfSound is the speed of sound, m/s.
	DefaultSpeedOfSound = 343.2
)

// Default cross-section kinds and easing.
const (
	// DefaultThroatShape is the throat cross-section kind.
	DefaultThroatShape = ShapeCircle

	// DefaultMouthShape is the mouth cross-section kind.
	DefaultMouthShape = ShapeEllipse

	// DefaultMorphing is the easing function inside a shape transition.
	DefaultMorphing = MorphLinear
)

// HornParams is the sparse, user-facing description of one horn. Zero
// values mean "absent"; see the package doc for the sparse-field
// convention. Length is the only required field.
//
// All lengths are millimeters; SpeedOfSound is meters per second.
type HornParams struct {
	// ThroatRadius and MouthRadius form the legacy circular description.
	ThroatRadius float64
	MouthRadius  float64

	// Width/height pairs form the general per-axis description.
	ThroatWidth  float64
	ThroatHeight float64
	MouthWidth   float64
	MouthHeight  float64

	// Length is the axial throat→mouth distance, mm. Required.
	Length float64

	// Resolution is the sample count; generators emit Resolution+1 points.
	Resolution int

	// CutoffFrequency drives the exponential/spherical expansion laws, Hz.
	CutoffFrequency float64

	// SpeedOfSound in m/s; converted to mm/s internally.
	SpeedOfSound float64

	// ThroatShape and MouthShape are cross-section kinds.
	ThroatShape Shape
	MouthShape  Shape

	// TransitionLength is the axial extent of the shape transition, mm.
	TransitionLength float64

	// Morphing selects the easing function inside the transition.
	Morphing MorphFunc
}

// Normalized is a HornParams with every field populated and both the
// radius and width/height forms reconciled. Produced once per call by
// Normalize; callers receive a copy and the engine never retains one.
type Normalized struct {
	ThroatRadius float64
	MouthRadius  float64

	ThroatWidth  float64
	ThroatHeight float64
	MouthWidth   float64
	MouthHeight  float64

	Length           float64
	Resolution       int
	CutoffFrequency  float64
	SpeedOfSound     float64 // m/s, as supplied
	ThroatShape      Shape
	MouthShape       Shape
	TransitionLength float64
	Morphing         MorphFunc
}

// SpeedMMPerSec returns the speed of sound in mm/s.
func (n Normalized) SpeedMMPerSec() float64 {
	return n.SpeedOfSound * 1000
}

// SameShape reports whether throat and mouth share a cross-section kind,
// in which case no shape morphing applies.
func (n Normalized) SameShape() bool {
	return n.ThroatShape == n.MouthShape
}

// Defaults returns the conventional fully-specified parameter set:
// 25 mm → 300 mm radius (50×50 mm → 600×600 mm), 500 mm long, 100 samples,
// 100 Hz cutoff at 343.2 m/s, circle→ellipse cross-sections with a linear
// transition spanning the full length.
func Defaults() HornParams {
	return HornParams{
		ThroatRadius:     DefaultThroatRadius,
		MouthRadius:      DefaultMouthRadius,
		ThroatWidth:      2 * DefaultThroatRadius,
		ThroatHeight:     2 * DefaultThroatRadius,
		MouthWidth:       2 * DefaultMouthRadius,
		MouthHeight:      2 * DefaultMouthRadius,
		Length:           DefaultLength,
		Resolution:       DefaultResolution,
		CutoffFrequency:  DefaultCutoffFrequency,
		SpeedOfSound:     DefaultSpeedOfSound,
		ThroatShape:      DefaultThroatShape,
		MouthShape:       DefaultMouthShape,
		TransitionLength: DefaultLength,
		Morphing:         DefaultMorphing,
	}
}
