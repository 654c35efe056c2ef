// Package params - validation of sparse horn parameter records.
//
// Design principles (shared with Normalize):
//   - Deterministic, side-effect free functions.
//   - No panics on user input - only sentinel errors from errors.go.
//   - Every rule is checked; all violations are reported together.
package params

import "fmt"

// Validate checks every rule against the sparse record p and returns nil
// when p is legal, or a *ValidationError aggregating ALL violations found.
// Generation must never start on invalid input.
//
// Rules, in report order:
//  1. No geometry field may be negative.
//  2. Throat and mouth must each be resolvable (radius, or width+height).
//  3. With both radii explicit, throat < mouth strictly.
//  4. With both sides dimension-only, at least one axis must expand.
//  5. Length must be positive.
//  6. Resolution, cutoff frequency, speed of sound: positive when given.
//  7. Transition length: positive and ≤ length when given.
//  8. Cross-section kinds must belong to the supported transition set.
//  9. Morphing function, when given, must be a known easing.
//
// Complexity: O(1).
func Validate(p HornParams) error {
	var violations []error

	// Rule 1: explicit negatives are never legal, whichever form is used.
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"throatRadius", p.ThroatRadius},
		{"mouthRadius", p.MouthRadius},
		{"throatWidth", p.ThroatWidth},
		{"throatHeight", p.ThroatHeight},
		{"mouthWidth", p.MouthWidth},
		{"mouthHeight", p.MouthHeight},
	} {
		if f.value < 0 {
			violations = append(violations, fmt.Errorf("%w: %s", ErrNegativeValue, f.name))
		}
	}

	// Rule 2: each end must be resolvable on its own.
	if !resolvable(p.ThroatRadius, p.ThroatWidth, p.ThroatHeight) {
		violations = append(violations, ErrThroatUnresolvable)
	}
	if !resolvable(p.MouthRadius, p.MouthWidth, p.MouthHeight) {
		violations = append(violations, ErrMouthUnresolvable)
	}

	// Rule 3: explicit radii must expand strictly.
	if p.ThroatRadius > 0 && p.MouthRadius > 0 && p.ThroatRadius >= p.MouthRadius {
		violations = append(violations, ErrThroatNotSmaller)
	}

	// Rule 4: a dimension-only horn must expand on at least one axis.
	dimOnly := p.ThroatRadius == 0 && p.MouthRadius == 0 &&
		p.ThroatWidth > 0 && p.ThroatHeight > 0 &&
		p.MouthWidth > 0 && p.MouthHeight > 0
	if dimOnly && p.ThroatWidth >= p.MouthWidth && p.ThroatHeight >= p.MouthHeight {
		violations = append(violations, ErrNoExpansion)
	}

	// Rule 5: length is required and positive.
	if p.Length <= 0 {
		violations = append(violations, ErrNonPositiveLength)
	}

	// Rule 6: optional scalars must be positive when given.
	if p.Resolution < 0 {
		violations = append(violations, ErrBadResolution)
	}
	if p.CutoffFrequency < 0 {
		violations = append(violations, ErrNonPositiveCutoff)
	}
	if p.SpeedOfSound < 0 {
		violations = append(violations, ErrNonPositiveSpeed)
	}

	// Rule 7: transition must fit inside the horn.
	if p.TransitionLength < 0 || (p.TransitionLength > 0 && p.Length > 0 && p.TransitionLength > p.Length) {
		violations = append(violations, ErrBadTransitionLength)
	}

	// Rule 8: both kinds must come from the supported transition set.
	throatShape, mouthShape := p.ThroatShape, p.MouthShape
	if throatShape == "" {
		throatShape = DefaultThroatShape
	}
	if mouthShape == "" {
		mouthShape = DefaultMouthShape
	}
	if !throatShape.Supported() || !mouthShape.Supported() {
		violations = append(violations,
			fmt.Errorf("%w: %q → %q", ErrUnsupportedShape, throatShape, mouthShape))
	}

	// Rule 9: easing name must be known when given.
	if p.Morphing != "" && !p.Morphing.Valid() {
		violations = append(violations, fmt.Errorf("%w: got %q", ErrBadMorphing, p.Morphing))
	}

	if len(violations) == 0 {
		return nil
	}

	return &ValidationError{Violations: violations}
}

// resolvable reports whether one horn end carries enough geometry:
// a positive radius, or both a positive width and a positive height.
func resolvable(radius, width, height float64) bool {
	return radius > 0 || (width > 0 && height > 0)
}
