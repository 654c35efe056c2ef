package params

import (
	"errors"
	"strings"
)

// Sentinel errors collected by Validate. Each names one violation kind;
// errors.Is reaches them through the aggregate ValidationError.
var (
	// ErrThroatUnresolvable indicates the throat carries neither a positive
	// radius nor a positive width and height pair.
	ErrThroatUnresolvable = errors.New("params: throat requires a positive radius, or both a positive width and height")

	// ErrMouthUnresolvable indicates the mouth carries neither a positive
	// radius nor a positive width and height pair.
	ErrMouthUnresolvable = errors.New("params: mouth requires a positive radius, or both a positive width and height")

	// ErrNegativeValue indicates a geometry field was supplied negative.
	ErrNegativeValue = errors.New("params: dimension must be positive")

	// ErrThroatNotSmaller indicates throatRadius ≥ mouthRadius.
	ErrThroatNotSmaller = errors.New("params: throat radius must be strictly less than mouth radius")

	// ErrNoExpansion indicates a dimension-only horn in which neither the
	// width axis nor the height axis expands from throat to mouth.
	ErrNoExpansion = errors.New("params: at least one axis must expand from throat to mouth")

	// ErrNonPositiveLength indicates a missing, zero or negative length.
	ErrNonPositiveLength = errors.New("params: length must be positive")

	// ErrBadResolution indicates a non-positive sample count.
	ErrBadResolution = errors.New("params: resolution must be a positive integer")

	// ErrNonPositiveCutoff indicates a non-positive cutoff frequency.
	ErrNonPositiveCutoff = errors.New("params: cutoff frequency must be positive")

	// ErrNonPositiveSpeed indicates a non-positive speed of sound.
	ErrNonPositiveSpeed = errors.New("params: speed of sound must be positive")

	// ErrBadTransitionLength indicates a transition length that is not
	// positive or exceeds the horn length.
	ErrBadTransitionLength = errors.New("params: transition length must be positive and not exceed length")

	// ErrUnsupportedShape indicates a throat/mouth cross-section kind
	// outside the supported transition set.
	ErrUnsupportedShape = errors.New("params: unsupported shape transition")

	// ErrBadMorphing indicates an unknown morphing function name.
	ErrBadMorphing = errors.New("params: morphing function must be linear, cubic or sigmoid")
)

// ValidationError aggregates every violation found in one HornParams
// record. Its message joins the violations one per line so a caller can
// correct their input in a single pass.
type ValidationError struct {
	// Violations holds one error per broken rule, in rule order.
	Violations []error
}

// Error joins all violation messages, one per line.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}

	return "params: invalid horn parameters:\n" + strings.Join(msgs, "\n")
}

// Unwrap exposes the individual violations to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Violations
}
