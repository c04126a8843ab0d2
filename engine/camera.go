package engine

import (
	"errors"
	"math"
	"time"

	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/vmath"
)

// ErrNoPresets is returned when cycling an empty preset list
var ErrNoPresets = errors.New("no camera presets saved")

// Viewpoint is an opaque snapshot of the camera: where it looks from,
// how wide, and its orientation basis
type Viewpoint struct {
	Center  vmath.Vec3F
	Range   float64
	Forward vmath.Vec3F
	Up      vmath.Vec3F
}

// DefaultViewpoint returns the canonical reset viewpoint
func DefaultViewpoint() Viewpoint {
	return Viewpoint{
		Center:  vmath.Vec3F{},
		Range:   parameter.DefaultRange,
		Forward: vmath.Vec3F{X: parameter.DefaultForwardX, Y: parameter.DefaultForwardY, Z: parameter.DefaultForwardZ},
		Up:      vmath.Vec3F{X: parameter.DefaultUpX, Y: parameter.DefaultUpY, Z: parameter.DefaultUpZ},
	}
}

// AutoFlyForward derives the auto-fly forward direction from elapsed game
// time: an ellipse-like sweep around the scene center
func AutoFlyForward(elapsed time.Duration) vmath.Vec3F {
	phase := parameter.AutoFlyRate * elapsed.Seconds()
	return vmath.Vec3F{
		X: math.Cos(phase) * parameter.AutoFlyScaleX,
		Y: parameter.AutoFlyForwardY,
		Z: math.Sin(phase) * parameter.AutoFlyScaleZ,
	}
}

// CameraController holds the append-only preset list and the cycling
// cursor. Presets are session-lifetime snapshots, never mutated or deleted
type CameraController struct {
	presets []Viewpoint
	cursor  int
}

// NewCameraController creates a controller with no saved presets
func NewCameraController() *CameraController {
	return &CameraController{cursor: -1}
}

// SavePreset appends a snapshot and parks the cursor on it.
// Returns the 1-based preset number for the info surface
func (c *CameraController) SavePreset(vp Viewpoint) int {
	c.presets = append(c.presets, vp)
	c.cursor = len(c.presets) - 1
	return len(c.presets)
}

// CycleNext advances the cursor circularly and returns the preset there.
// Returns ErrNoPresets, with no state change, when nothing is saved
func (c *CameraController) CycleNext() (Viewpoint, int, error) {
	if len(c.presets) == 0 {
		return Viewpoint{}, 0, ErrNoPresets
	}
	c.cursor = (c.cursor + 1) % len(c.presets)
	return c.presets[c.cursor], c.cursor + 1, nil
}

// Count returns the number of saved presets
func (c *CameraController) Count() int {
	return len(c.presets)
}
