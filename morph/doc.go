// Package morph blends the horn's cross-section kind from the throat
// shape to the mouth shape along the axial transition region.
//
// For every axial sample x in [0, length] the engine reports:
//
//   - a morphing factor in [0,1]: 0 before the transition starts, 1 after
//     it ends, and an eased value strictly between inside it;
//   - a cross-section label: the throat kind at factor 0, the mouth kind
//     at factor 1, and the sentinel "morphed" strictly between;
//   - the width/height envelope at x, supplied by the owning profile
//     generator through a DimensionsFunc hook (linear expansion for
//     conical horns, exponential for exponential horns). The envelope is
//     independent of the factor: morphing affects only the reported label
//     and blend weight, never the dimensions, which already interpolate
//     smoothly by construction.
//
// Three easings are supported: linear t, cubic smoothstep t²(3−2t), and a
// logistic sigmoid 1/(1+e^(−6(t−0.5))).
//
// All functions are pure; when throat and mouth kinds are identical the
// factor is 0 everywhere and no transition is reported.
//
// Complexity: Profile is O(resolution); Blend and Transition are O(1).
package morph
