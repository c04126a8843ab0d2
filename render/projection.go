package render

import (
	"math"

	"github.com/lixenwraith/helio/engine"
	"github.com/lixenwraith/helio/vmath"
)

// cellAspect compensates terminal cells being roughly twice as tall as wide
const cellAspect = 2.0

// Projection maps world points onto screen cells for one viewpoint.
// Orthographic along the camera forward axis: x/y are distances along the
// camera right/up basis, scaled so the view range fills the screen height
type Projection struct {
	center  vmath.Vec3F
	right   vmath.Vec3F
	up      vmath.Vec3F
	forward vmath.Vec3F
	sx, sy  float64 // cells per world unit
	cx, cy  int
}

// NewProjection derives the camera basis from a viewpoint
func NewProjection(vp engine.Viewpoint, width, height int) Projection {
	forward := vmath.V3FNormalize(vp.Forward)
	right := vmath.V3FCross(forward, vp.Up)
	if vmath.V3FMagSq(right) == 0 {
		// Forward parallel to up: fall back to the world X axis
		right = vmath.Vec3F{X: 1}
	}
	right = vmath.V3FNormalize(right)
	up := vmath.V3FCross(right, forward)

	rng := vp.Range
	if rng <= 0 {
		rng = 1
	}
	sy := float64(height) / (2 * rng)

	return Projection{
		center:  vp.Center,
		right:   right,
		up:      up,
		forward: forward,
		sx:      sy * cellAspect,
		sy:      sy,
		cx:      width / 2,
		cy:      height / 2,
	}
}

// Project maps a world point to a screen cell
func (p Projection) Project(w vmath.Vec3F) (int, int) {
	d := vmath.V3FSub(w, p.center)
	x := vmath.V3FDot(d, p.right)
	y := vmath.V3FDot(d, p.up)
	return p.cx + int(math.Round(x*p.sx)), p.cy - int(math.Round(y*p.sy))
}

// ExtentCells converts a world-space radius to a cell extent, minimum 1
// so every body stays clickable at any zoom
func (p Projection) ExtentCells(worldRadius float64) int {
	cells := int(math.Round(worldRadius * p.sy))
	if cells < 1 {
		return 1
	}
	return cells
}
