package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/helio/parameter"
)

// TickEngine advances the simulation by one frame: orbital angles, pulse
// expiry and the ambient glow oscillation
type TickEngine struct {
	s *Session
}

// NewTickEngine creates the per-frame update step for a session
func NewTickEngine(s *Session) *TickEngine {
	return &TickEngine{s: s}
}

// Tick applies one update for the measured wall-clock delta.
// Paused sessions return immediately with no state mutation: pulse timers
// and the glow phase read game time, so they freeze consistently
func (t *TickEngine) Tick(wallDelta time.Duration) {
	if t.s.Paused() {
		return
	}

	step := wallDelta.Seconds() * t.s.Speed() * parameter.CadenceFactor
	t.s.Registry.Advance(step)

	now := t.s.Clock.Now()
	t.s.Registry.ExpirePulses(now)

	gameSeconds := t.s.Clock.GameElapsed().Seconds()
	t.s.glowRadius = t.s.SunRadius() * (parameter.GlowBase + parameter.GlowAmplitude*math.Sin(parameter.GlowRate*gameSeconds))
}
