// Package hornprofiles generates two-dimensional boundary curves for the
// interior wall of an acoustic horn — the flared duct that couples a
// loudspeaker driver (throat) to free air (mouth) — from a handful of
// physical parameters.
//
// 🚀 What is hornprofiles?
//
//	A pure computation library that turns a sparse parameter record into a
//	sampled wall curve plus derived acoustic metadata:
//	  • Conical      — straight-wall linear expansion, per-axis aware
//	  • Exponential  — r(x) = r₀·exp(k·x/2) with k fitted to the mouth
//	  • Spherical    — hyperbolic (Webster) area law driven by cutoff frequency
//	  • Tractrix     — numerically inverted classic tractrix construction
//	plus a shape-morphing engine that blends differing throat/mouth
//	cross-section kinds along the horn's length.
//
// ✨ Why choose hornprofiles?
//
//   - Deterministic – pure functions over immutable inputs, no hidden state
//   - Fail-fast – every validation problem reported at once, one per line
//   - Safe math – guarded log/divide, clamping and monotonicity repair
//   - Concurrency-ready – every call is reentrant; no locks in the core
//
// Everything is organized under five subpackages:
//
//	hornmath/ — guarded numeric helpers, unit bridges, flare formulas
//	params/   — sparse parameter record, validation, total normalization
//	morph/    — cross-section blend factors and transition metadata
//	profile/  — the four profile generators and the shared result contract
//	registry/ — caller-owned name→constructor lookup for generators
//
// Quick ASCII example:
//
//	throat ──╮
//	          ╲________
//	                   ╲_________
//	                             ╲────── mouth
//
//	one wall of an exponential horn, sampled at resolution+1 axial points.
//
// All lengths are millimeters; the speed of sound is accepted in m/s and
// converted internally. See each subpackage's doc.go and example_test.go
// for working code.
package hornprofiles
