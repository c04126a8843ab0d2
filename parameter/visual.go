package parameter

import "github.com/gdamore/tcell/v2"

// Cosmetic constants. The wobble factor and size normalization are fixed
// display parameters, not tunable physics
const (
	// OrbitWobbleFactor scales the out-of-plane oscillation that keeps the
	// system from rendering as a flat disk
	OrbitWobbleFactor = 0.07

	// SizeNormalization divides scaled visual radii into a reasonable
	// on-screen body size
	SizeNormalization = 2.8

	// SunRadiusUnit is the sun's base visual radius before radius scaling
	SunRadiusUnit = 0.1
)

// Sun glow oscillation: radius = sunRadius * (GlowBase + GlowAmplitude*sin(GlowRate*t))
const (
	GlowBase      = 2.0
	GlowAmplitude = 0.06
	GlowRate      = 0.6
)

// Starfield generation (one-time cosmetic seed)
const (
	StarCount    = 220
	StarShellMin = 15.0
	StarShellMax = 35.0
)

// Orbit ring sampling step in radians
const RingStep = 0.05

// TrailRetain is the number of past positions kept per body trail
const TrailRetain = 300

// HighlightColor is the pulse color applied to a selected body
var HighlightColor = tcell.ColorWhite
