package engine

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/catalog"
	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/vmath"
)

// Pulse is a time-bounded selection highlight on a body.
// At most one per body; Activated is game time so pause freezes the window
type Pulse struct {
	Original  tcell.Color // color restored when the pulse expires
	Activated time.Time
}

// Body holds one celestial object's static catalog data plus live
// simulation state
type Body struct {
	catalog.Entry

	Index int // registry index, also the wobble phase offset

	// Live state
	Angle        float64 // current orbital angle in radians, never wrapped
	Radius       float64 // current orbital radius after distance scaling
	VisualSize   float64 // current on-screen size after radius scaling
	AngularSpeed float64 // radians per simulated day, 2*pi/period
	Color        tcell.Color
	Pulse        *Pulse // nil when no highlight is active
}

// Position is the single source of a body's world position: a circular
// orbit in the XY plane plus a per-body out-of-plane wobble. The wobble is
// a fixed cosmetic parameter, not orbital mechanics
func (b *Body) Position() vmath.Vec3F {
	return vmath.Vec3F{
		X: b.Radius * math.Cos(b.Angle),
		Y: b.Radius * math.Sin(b.Angle),
		Z: parameter.OrbitWobbleFactor * b.Radius * math.Sin(b.Angle/2+float64(b.Index)),
	}
}
