package params_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdmku/hornprofiles/params"
)

// minimal returns the documented minimal valid parameter set.
func minimal() params.HornParams {
	return params.HornParams{ThroatRadius: 25, MouthRadius: 300, Length: 500}
}

// TestValidate_MinimalSetAccepted verifies the documented minimal valid
// record passes with no error.
func TestValidate_MinimalSetAccepted(t *testing.T) {
	assert.NoError(t, params.Validate(minimal()), "minimal {25,300,500} must validate")
}

// TestValidate_DefaultsAccepted verifies the conventional default set passes.
func TestValidate_DefaultsAccepted(t *testing.T) {
	assert.NoError(t, params.Validate(params.Defaults()))
}

// TestValidate_SingleViolations exercises each rule in isolation.
func TestValidate_SingleViolations(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*params.HornParams)
		wantErr error
	}{
		{"negative throat radius", func(p *params.HornParams) { p.ThroatRadius = -25 }, params.ErrNegativeValue},
		{"zero throat", func(p *params.HornParams) { p.ThroatRadius = 0 }, params.ErrThroatUnresolvable},
		{"zero mouth", func(p *params.HornParams) { p.MouthRadius = 0 }, params.ErrMouthUnresolvable},
		{"throat equals mouth", func(p *params.HornParams) { p.ThroatRadius = 300 }, params.ErrThroatNotSmaller},
		{"throat exceeds mouth", func(p *params.HornParams) { p.ThroatRadius = 400 }, params.ErrThroatNotSmaller},
		{"zero length", func(p *params.HornParams) { p.Length = 0 }, params.ErrNonPositiveLength},
		{"negative resolution", func(p *params.HornParams) { p.Resolution = -1 }, params.ErrBadResolution},
		{"negative cutoff", func(p *params.HornParams) { p.CutoffFrequency = -100 }, params.ErrNonPositiveCutoff},
		{"negative speed", func(p *params.HornParams) { p.SpeedOfSound = -343.2 }, params.ErrNonPositiveSpeed},
		{"transition exceeds length", func(p *params.HornParams) { p.TransitionLength = 501 }, params.ErrBadTransitionLength},
		{"negative transition", func(p *params.HornParams) { p.TransitionLength = -1 }, params.ErrBadTransitionLength},
		{"unknown throat shape", func(p *params.HornParams) { p.ThroatShape = "triangle" }, params.ErrUnsupportedShape},
		{"unknown mouth shape", func(p *params.HornParams) { p.MouthShape = "star" }, params.ErrUnsupportedShape},
		{"morphed is not a kind", func(p *params.HornParams) { p.ThroatShape = params.ShapeMorphed }, params.ErrUnsupportedShape},
		{"unknown morphing", func(p *params.HornParams) { p.Morphing = "bounce" }, params.ErrBadMorphing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := minimal()
			tc.mutate(&p)
			err := params.Validate(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidate_DimensionOnlyExpansion verifies the per-axis expansion rule
// of the width/height form.
func TestValidate_DimensionOnlyExpansion(t *testing.T) {
	// Neither axis expands: rejected.
	p := params.HornParams{
		ThroatWidth: 100, ThroatHeight: 100,
		MouthWidth: 100, MouthHeight: 80,
		Length: 500,
	}
	assert.ErrorIs(t, params.Validate(p), params.ErrNoExpansion)

	// One expanding axis suffices.
	p.MouthWidth = 600
	assert.NoError(t, params.Validate(p), "a single expanding axis must validate")
}

// TestValidate_CollectsAllViolations verifies aggregation: every broken
// rule appears in one error, one message line per violation.
func TestValidate_CollectsAllViolations(t *testing.T) {
	p := params.HornParams{
		ThroatRadius:     -5,
		MouthRadius:      0,
		Length:           0,
		Resolution:       -3,
		TransitionLength: -1,
		ThroatShape:      "hexagon",
	}

	err := params.Validate(p)
	require.Error(t, err)

	for _, want := range []error{
		params.ErrNegativeValue,
		params.ErrMouthUnresolvable,
		params.ErrNonPositiveLength,
		params.ErrBadResolution,
		params.ErrBadTransitionLength,
		params.ErrUnsupportedShape,
	} {
		assert.ErrorIs(t, err, want, "aggregate must carry %v", want)
	}

	var vErr *params.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, len(vErr.Violations)+1, len(strings.Split(err.Error(), "\n")),
		"message must list one violation per line under the header")
}

// TestValidate_ShapeTransitionMessageNamesBothKinds verifies the
// unsupported-shape error mentions both the throat and mouth kinds.
func TestValidate_ShapeTransitionMessageNamesBothKinds(t *testing.T) {
	p := minimal()
	p.ThroatShape = "hexagon"
	p.MouthShape = params.ShapeRectangular

	err := params.Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"hexagon"`)
	assert.Contains(t, err.Error(), `"rectangular"`)
}
