package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abcdmku/hornprofiles/params"
)

// TestNormalize_FillsDocumentedDefaults verifies every optional field is
// populated with its documented default.
func TestNormalize_FillsDocumentedDefaults(t *testing.T) {
	n := params.Normalize(minimal())

	assert.Equal(t, params.DefaultResolution, n.Resolution)
	assert.Equal(t, params.DefaultCutoffFrequency, n.CutoffFrequency)
	assert.Equal(t, params.DefaultSpeedOfSound, n.SpeedOfSound)
	assert.Equal(t, params.DefaultThroatShape, n.ThroatShape)
	assert.Equal(t, params.DefaultMouthShape, n.MouthShape)
	assert.Equal(t, params.DefaultMorphing, n.Morphing)
	assert.Equal(t, n.Length, n.TransitionLength, "transition defaults to the full length")
}

// TestNormalize_DerivesDimensionsFromRadius verifies width/height derive
// as twice the radius when only radii are given.
func TestNormalize_DerivesDimensionsFromRadius(t *testing.T) {
	n := params.Normalize(minimal())

	assert.Equal(t, 50.0, n.ThroatWidth)
	assert.Equal(t, 50.0, n.ThroatHeight)
	assert.Equal(t, 600.0, n.MouthWidth)
	assert.Equal(t, 600.0, n.MouthHeight)
}

// TestNormalize_DerivesRadiusFromDimensions verifies radius derives as
// half the lesser of width and height when only dimensions are given.
func TestNormalize_DerivesRadiusFromDimensions(t *testing.T) {
	p := params.HornParams{
		ThroatWidth: 60, ThroatHeight: 40,
		MouthWidth: 600, MouthHeight: 400,
		Length: 500,
	}

	n := params.Normalize(p)
	assert.Equal(t, 20.0, n.ThroatRadius, "half the lesser throat axis")
	assert.Equal(t, 200.0, n.MouthRadius, "half the lesser mouth axis")
}

// TestNormalize_RadiusAuthoritativeOnlyWithoutDimensions verifies that an
// explicit radius coexists with explicit dimensions untouched, and fills
// a partially absent pair from the radius.
func TestNormalize_RadiusAuthoritativeOnlyWithoutDimensions(t *testing.T) {
	p := minimal()
	p.ThroatWidth = 80 // explicit, kept even though 2r would be 50
	n := params.Normalize(p)

	assert.Equal(t, 25.0, n.ThroatRadius)
	assert.Equal(t, 80.0, n.ThroatWidth)
	assert.Equal(t, 50.0, n.ThroatHeight, "absent height fills from 2×radius")
}

// TestNormalize_DoesNotMutateInput verifies the caller's record is
// untouched by normalization.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	p := minimal()
	before := p
	_ = params.Normalize(p)
	assert.Equal(t, before, p, "Normalize must not mutate its argument")
}

// TestNormalized_SpeedMMPerSec verifies the m/s → mm/s bridge.
func TestNormalized_SpeedMMPerSec(t *testing.T) {
	n := params.Normalize(minimal())
	assert.InDelta(t, 343200.0, n.SpeedMMPerSec(), 1e-9)
}

// TestNormalized_SameShape verifies the shape-identity predicate.
func TestNormalized_SameShape(t *testing.T) {
	p := minimal()
	p.ThroatShape = params.ShapeCircle
	p.MouthShape = params.ShapeCircle
	assert.True(t, params.Normalize(p).SameShape())

	// The conventional defaults transition circle → ellipse.
	assert.False(t, params.Normalize(minimal()).SameShape())
}
