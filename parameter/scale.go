package parameter

// ScaleMode selects one of the display scale presets
type ScaleMode int

const (
	// ScaleVisible exaggerates sizes and compresses distances so every
	// body is visible on screen at once
	ScaleVisible ScaleMode = iota

	// ScaleRealistic keeps ratios closer to reality, still scaled to fit
	ScaleRealistic
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleRealistic:
		return "realistic"
	default:
		return "visible"
	}
}

// Toggle returns the other scale mode
func (m ScaleMode) Toggle() ScaleMode {
	if m == ScaleVisible {
		return ScaleRealistic
	}
	return ScaleVisible
}

// ScaleFactors bundles the display factors of one scale preset
type ScaleFactors struct {
	Distance float64 // multiplier on base visual distance
	Radius   float64 // multiplier on base visual radius
	Speed    float64 // initial speed multiplier when the preset seeds a session
}

var scalePresets = [...]ScaleFactors{
	ScaleVisible:   {Distance: 1.6, Radius: 10, Speed: 0.5},
	ScaleRealistic: {Distance: 0.8, Radius: 1.2, Speed: 0.5},
}

// Resolve maps a scale mode to its display factors
// Total over the enum; out-of-range values resolve to the visible preset
func Resolve(m ScaleMode) ScaleFactors {
	if m < 0 || int(m) >= len(scalePresets) {
		return scalePresets[ScaleVisible]
	}
	return scalePresets[m]
}
