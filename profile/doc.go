// Package profile implements the four horn-profile families and the
// result contract they share.
//
// 🚀 What is a profile generator?
//
//	A pure function from a sparse parameter record to the sampled curve of
//	one horn wall plus derived acoustic metadata. Four families exist:
//	  • Conical      — half-width and half-height interpolate linearly
//	  • Exponential  — r(x) = r₀·exp(k·x/2), k fitted per axis to the mouth
//	  • Spherical    — hyperbolic (Webster) area law, circular sections only
//	  • Tractrix     — transcendental relation inverted by y-sampling
//
// Every family implements the Generator contract: Generate validates the
// input (reporting all violations at once), normalizes it, and emits a
// Result with resolution+1 points spanning [0, length]. Conical and
// Exponential are width/height-aware: they always emit per-axis
// half-dimension profiles and, when the throat and mouth cross-section
// kinds differ, a morph.ShapePoint sequence and transition metadata.
//
// Results are created fresh per call, owned solely by the caller, and the
// generators hold no state: every call is reentrant and safe to issue
// concurrently without locking.
//
// Complexity: every Generate is O(resolution) time and memory.
package profile
