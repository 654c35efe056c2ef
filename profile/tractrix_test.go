package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdmku/hornprofiles/profile"
)

// TestTractrix_MonotoneCurve verifies x strictly increases and y never
// decreases across all samples.
func TestTractrix_MonotoneCurve(t *testing.T) {
	res, err := profile.Tractrix{}.Generate(circular())
	require.NoError(t, err)

	for i := 1; i < len(res.Points); i++ {
		assert.Greater(t, res.Points[i].X, res.Points[i-1].X, "x strictly increasing at %d", i)
		assert.GreaterOrEqual(t, res.Points[i].Y, res.Points[i-1].Y, "y non-decreasing at %d", i)
	}
}

// TestTractrix_Endpoints verifies the curve spans the throat and mouth
// radii over exactly the requested physical length.
func TestTractrix_Endpoints(t *testing.T) {
	res, err := profile.Tractrix{}.Generate(circular())
	require.NoError(t, err)

	first := res.Points[0]
	last := res.Points[len(res.Points)-1]

	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, 25.0, first.Y, "throat radius at x=0")
	assert.Equal(t, 500.0, last.X, "axial span rescales to exactly the requested length")
	assert.Equal(t, 300.0, last.Y, "mouth radius at the far end")
}

// TestTractrix_CalculatedValues verifies the reported tractrix parameter
// and bookkeeping quantities.
func TestTractrix_CalculatedValues(t *testing.T) {
	res, err := profile.Tractrix{}.Generate(circular())
	require.NoError(t, err)

	cv := res.Metadata.CalculatedValues
	assert.Equal(t, 300.0, cv[profile.KeyTractrixParameter], "a equals the mouth radius")
	assert.InDelta(t, 144.0, cv[profile.KeyExpansionRatio], 1e-12)
	assert.Equal(t, res.Points[len(res.Points)-1].Y, cv[profile.KeyActualMouthRadius])
	assert.Equal(t, 25.0, cv[profile.KeyThroatRadius])
	assert.Equal(t, 500.0, cv[profile.KeyHornLength])
	assert.Equal(t, 101.0, cv[profile.KeyPointCount])
}
