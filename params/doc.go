// Package params defines the horn parameter vocabulary and the two-stage
// input pipeline every profile generator sits behind:
//
//  1. Validate — inspects a sparse HornParams record and reports EVERY
//     violation at once (one per line in the aggregate error), so a caller
//     can fix their input in a single pass.
//  2. Normalize — fills every optional field with its documented default,
//     reconciles the radius and width/height forms of the throat and mouth,
//     and returns a fully-populated Normalized record. Normalization is
//     total: it assumes validation has passed and cannot fail.
//
// Sparse-field convention:
//
//	Every legal value of every optional field is strictly positive (or a
//	non-empty label), so the zero value unambiguously means "absent". A
//	throat or mouth is resolvable when it carries a positive radius, or
//	both a positive width and a positive height. Radius, when absent, is
//	derived as half the lesser of width and height; width/height, when
//	absent, are derived as twice the radius.
//
// Errors:
//   - Validate returns *ValidationError aggregating sentinel errors
//     (ErrThroatUnresolvable, ErrThroatNotSmaller, ErrUnsupportedShape, ...);
//     errors.Is reaches each individual sentinel through Unwrap() []error.
//   - No function in this package panics on user input or mutates its
//     argument.
//
// Complexity: Validate and Normalize are O(1).
package params
