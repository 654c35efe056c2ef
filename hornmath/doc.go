// Package hornmath provides the small numeric vocabulary shared by every
// horn-profile generator: guarded logarithm and division, clamping and
// linear interpolation, degree↔radian conversion, circular area↔radius
// mapping, and the acoustic flare-constant formulas.
//
// Conventions:
//
//   - All lengths are millimeters; MetersPerSecToMM bridges the one place
//     (speed of sound) where callers naturally think in m/s.
//   - Guarded functions return sentinel errors (ErrLogDomain,
//     ErrDivideByZero) instead of silently producing NaN/±Inf; SafeSqrt
//     clamps negative arguments to zero because generator code only ever
//     feeds it areas and squared-radius differences that may dip below
//     zero by rounding.
//   - Every function is deterministic, allocation-free and side-effect
//     free.
//
// Performance: all helpers are O(1).
package hornmath
