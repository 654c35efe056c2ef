package params

// Normalize converts a validated sparse record into a fully-populated
// Normalized record. Defaulting is total and explicit:
//
//   - radius, when absent, becomes half the lesser of width and height;
//   - width/height, when absent, become twice the (resolved) radius;
//   - resolution, cutoff frequency, speed of sound, cross-section kinds
//     and easing take their documented defaults;
//   - transition length defaults to the full horn length.
//
// The caller's record is never mutated. Normalize assumes Validate has
// already passed; feeding it an invalid record is caller misuse.
//
// Complexity: O(1).
func Normalize(p HornParams) Normalized {
	throatR, throatW, throatH := resolveEnd(p.ThroatRadius, p.ThroatWidth, p.ThroatHeight)
	mouthR, mouthW, mouthH := resolveEnd(p.MouthRadius, p.MouthWidth, p.MouthHeight)

	n := Normalized{
		ThroatRadius: throatR,
		MouthRadius:  mouthR,
		ThroatWidth:  throatW,
		ThroatHeight: throatH,
		MouthWidth:   mouthW,
		MouthHeight:  mouthH,

		Length:           p.Length,
		Resolution:       p.Resolution,
		CutoffFrequency:  p.CutoffFrequency,
		SpeedOfSound:     p.SpeedOfSound,
		ThroatShape:      p.ThroatShape,
		MouthShape:       p.MouthShape,
		TransitionLength: p.TransitionLength,
		Morphing:         p.Morphing,
	}

	if n.Resolution == 0 {
		n.Resolution = DefaultResolution
	}
	if n.CutoffFrequency == 0 {
		n.CutoffFrequency = DefaultCutoffFrequency
	}
	if n.SpeedOfSound == 0 {
		n.SpeedOfSound = DefaultSpeedOfSound
	}
	if n.ThroatShape == "" {
		n.ThroatShape = DefaultThroatShape
	}
	if n.MouthShape == "" {
		n.MouthShape = DefaultMouthShape
	}
	if n.TransitionLength == 0 {
		n.TransitionLength = n.Length
	}
	if n.Morphing == "" {
		n.Morphing = DefaultMorphing
	}

	return n
}

// resolveEnd reconciles the radius and width/height forms of one horn end.
// Exactly one form may be absent; Validate guarantees at least one is
// present and positive.
func resolveEnd(radius, width, height float64) (r, w, h float64) {
	r, w, h = radius, width, height

	if r == 0 {
		// Radius derives from the lesser axis of an explicit pair.
		r = min(w, h) / 2
	}
	if w == 0 {
		w = 2 * r
	}
	if h == 0 {
		h = 2 * r
	}

	return r, w, h
}
