package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/helio/catalog"
	"github.com/lixenwraith/helio/parameter"
)

// Registry holds every body's static catalog data and live simulation
// state. All mutation happens on the coordinator goroutine
type Registry struct {
	bodies []*Body
}

// NewRegistry builds bodies from validated catalog entries and applies the
// initial scale mode. Angles start at zero
func NewRegistry(entries []catalog.Entry, mode parameter.ScaleMode) *Registry {
	r := &Registry{bodies: make([]*Body, 0, len(entries))}
	for i, e := range entries {
		r.bodies = append(r.bodies, &Body{
			Entry:        e,
			Index:        i,
			AngularSpeed: 2 * math.Pi / e.PeriodDays,
			Color:        e.Color,
		})
	}
	r.ApplyScale(mode)
	return r
}

// ApplyScale recomputes every body's orbital radius and visual size for
// the given mode. Angles are untouched, so switching modes moves bodies
// radially without a discontinuity in time. Idempotent for an unchanged
// mode; O(len(bodies))
func (r *Registry) ApplyScale(mode parameter.ScaleMode) {
	factors := parameter.Resolve(mode)
	for _, b := range r.bodies {
		b.Radius = b.VisDistance * factors.Distance
		b.VisualSize = b.VisRadius * factors.Radius / parameter.SizeNormalization
	}
}

// Advance rotates every body by its angular speed. dt is simulated days
// and already incorporates the speed multiplier and cadence factor
func (r *Registry) Advance(dt float64) {
	for _, b := range r.bodies {
		b.Angle += b.AngularSpeed * dt
	}
}

// TriggerPulse highlights body i. A body already pulsing keeps its
// original activation time: re-picking during the highlight window is a
// no-op to avoid flicker
func (r *Registry) TriggerPulse(i int, now time.Time) {
	b, ok := r.Lookup(i)
	if !ok || b.Pulse != nil {
		return
	}
	b.Pulse = &Pulse{Original: b.Color, Activated: now}
	b.Color = parameter.HighlightColor
}

// ExpirePulses restores the pre-pulse color on every body whose highlight
// window has elapsed
func (r *Registry) ExpirePulses(now time.Time) {
	for _, b := range r.bodies {
		if b.Pulse == nil {
			continue
		}
		if now.Sub(b.Pulse.Activated) > parameter.PulseDuration {
			b.Color = b.Pulse.Original
			b.Pulse = nil
		}
	}
}

// Lookup returns body i with a bounds check, for pick resolution
func (r *Registry) Lookup(i int) (*Body, bool) {
	if i < 0 || i >= len(r.bodies) {
		return nil, false
	}
	return r.bodies[i], true
}

// Bodies exposes the body slice for iteration. Callers must not mutate
// outside the coordinator goroutine
func (r *Registry) Bodies() []*Body {
	return r.bodies
}

// Len returns the number of tracked bodies
func (r *Registry) Len() int {
	return len(r.bodies)
}
