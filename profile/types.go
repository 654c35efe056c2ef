package profile

import (
	"github.com/abcdmku/hornprofiles/morph"
	"github.com/abcdmku/hornprofiles/params"
)

// Registered names of the built-in profile families.
const (
	TypeConical     = "conical"
	TypeExponential = "exponential"
	TypeSpherical   = "spherical"
	TypeTractrix    = "tractrix"
)

// CalculatedValues keys. Which keys a Result carries depends on the
// profile family; see each generator's doc comment.
const (
	KeyFlareAngle       = "flareAngle"
	KeyFlareAngleWidth  = "flareAngleWidth"
	KeyFlareAngleHeight = "flareAngleHeight"

	KeyExpansionRateWidth  = "expansionRateWidth"
	KeyExpansionRateHeight = "expansionRateHeight"

	KeyFlareConstant       = "flareConstant"
	KeyFlareConstantWidth  = "flareConstantWidth"
	KeyFlareConstantHeight = "flareConstantHeight"

	KeyTheoreticalFlareConstant = "theoreticalFlareConstant"
	KeyActualCutoffFrequency    = "actualCutoffFrequency"
	KeyExpansionFactor          = "expansionFactor"

	KeyThroatArea           = "throatArea"
	KeyMouthArea            = "mouthArea"
	KeyAreaExpansionRatio   = "areaExpansionRatio"
	KeyVolumeExpansionRatio = "volumeExpansionRatio"

	KeyWaveRadius = "waveRadius"
	KeyTFactor    = "tFactor"

	KeyTractrixParameter = "tractrixParameter"
	KeyExpansionRatio    = "expansionRatio"
	KeyActualMouthRadius = "actualMouthRadius"
	KeyThroatRadius      = "throatRadius"
	KeyHornLength        = "hornLength"
	KeyPointCount        = "pointCount"
)

// Point is one sample of a wall curve: axial position X (mm from the
// throat) and radius or half-dimension Y (mm).
type Point struct {
	X float64
	Y float64
}

// Metadata describes how a Result was produced.
type Metadata struct {
	// ProfileType is the family name (TypeConical, ...).
	ProfileType string

	// Parameters is the fully-populated record the curve was computed from.
	Parameters params.Normalized

	// CalculatedValues carries family-specific derived quantities.
	CalculatedValues map[string]float64

	// Transition summarizes the shape blend region; nil when the family is
	// circular-only or the throat and mouth kinds are identical.
	Transition *morph.TransitionMetadata
}

// Result is the output of one generation call. Points is always present
// with resolution+1 samples; the optional sequences depend on the family.
type Result struct {
	// Points is the primary wall curve. For width/height-aware families it
	// is the per-sample mean of the two half-dimensions, kept for
	// compatibility with circular-only consumers.
	Points []Point

	// WidthProfile and HeightProfile carry per-axis half-dimensions;
	// present only for width/height-aware families.
	WidthProfile  []Point
	HeightProfile []Point

	// ShapeProfile carries per-sample cross-section blends; present only
	// when the throat and mouth kinds differ.
	ShapeProfile []morph.ShapePoint

	Metadata Metadata
}

// Generator is the contract every profile family implements. The four
// implementations are stateless value types; a Generator is safe to share
// and to call concurrently.
type Generator interface {
	// Type returns the family name used for registry lookup.
	Type() string

	// Generate validates p, normalizes it, and computes the curve.
	// On invalid input it returns the aggregate *params.ValidationError
	// and performs no generation work.
	Generate(p params.HornParams) (*Result, error)

	// Defaults returns the conventional default parameter set.
	Defaults() params.HornParams

	// Validate reports every violation in p without generating.
	Validate(p params.HornParams) error
}

// prepare runs the shared validate→normalize pipeline.
func prepare(p params.HornParams) (params.Normalized, error) {
	if err := params.Validate(p); err != nil {
		return params.Normalized{}, err
	}

	return params.Normalize(p), nil
}

// attachShape populates ShapeProfile and Metadata.Transition when the
// throat and mouth cross-section kinds differ.
func attachShape(res *Result, np params.Normalized, dims morph.DimensionsFunc) {
	if np.SameShape() {
		return
	}

	res.ShapeProfile = morph.Profile(np, dims)
	tm := morph.Transition(np)
	res.Metadata.Transition = &tm
}
