package engine

import (
	"fmt"

	"github.com/lixenwraith/helio/event"
	"github.com/lixenwraith/helio/parameter"
)

// SoundPlayer plays short interaction cues. Implementations must not block
type SoundPlayer interface {
	PlaySelect()
	PlayError()
}

// Resolver maps discrete input events to session mutations. Every handler
// is synchronous and non-blocking; anything time-bounded (the selection
// highlight) is expressed as state checked on later ticks, never a wait
type Resolver struct {
	s     *Session
	sound SoundPlayer
}

// NewResolver creates a resolver for the session. sound may be nil
func NewResolver(s *Session, sound SoundPlayer) *Resolver {
	return &Resolver{s: s, sound: sound}
}

// Apply processes one event. Unknown pick targets and unbound keys are
// normal no-ops, not errors
func (r *Resolver) Apply(ev event.SimEvent) {
	switch ev.Type {
	case event.TypePointerDown:
		if p, ok := ev.Payload.(*event.PointerDownPayload); ok {
			r.pointerDown(p.Body)
		}

	case event.TypeKeyPress:
		if p, ok := ev.Payload.(*event.KeyPressPayload); ok {
			r.keyPress(p.Key)
		}

	case event.TypeSpeedSet:
		if p, ok := ev.Payload.(*event.ValuePayload); ok {
			r.s.SetSpeed(p.Value)
		}

	case event.TypeZoomSet:
		if p, ok := ev.Payload.(*event.ValuePayload); ok {
			vp := r.s.Viewpoint()
			vp.Range = p.Value
			r.s.SetViewpoint(vp)
		}

	case event.TypeScaleToggle:
		mode := r.s.ToggleScale()
		r.s.Info().Push(fmt.Sprintf("Scale: %s", mode))

	case event.TypeAutoFlyToggle:
		if r.s.ToggleAutoFly() {
			r.s.Info().Push("Auto-fly: on")
		} else {
			r.s.Info().Push("Auto-fly: off")
		}

	case event.TypePresetSave:
		n := r.s.Camera.SavePreset(r.s.Viewpoint())
		r.s.Info().Push(fmt.Sprintf("Saved preset #%d", n))

	case event.TypePresetNext:
		vp, n, err := r.s.Camera.CycleNext()
		if err != nil {
			r.s.Info().Push("No presets saved yet.")
			if r.sound != nil {
				r.sound.PlayError()
			}
			return
		}
		r.s.SetViewpoint(vp)
		r.s.Info().Push(fmt.Sprintf("Loaded preset #%d", n))

	case event.TypeViewReset:
		r.s.SetViewpoint(DefaultViewpoint())
	}
}

func (r *Resolver) pointerDown(index int) {
	b, ok := r.s.Registry.Lookup(index)
	if !ok {
		// Empty space or decorative object
		return
	}
	r.s.Select(b)
	r.s.Registry.TriggerPulse(index, r.s.Clock.Now())
	if r.sound != nil {
		r.sound.PlaySelect()
	}
}

func (r *Resolver) keyPress(key rune) {
	switch key {
	case ' ':
		r.s.TogglePause()
	case '+':
		r.s.SetSpeed(r.s.Speed() * parameter.SpeedStepFactor)
	case '-':
		r.s.SetSpeed(r.s.Speed() / parameter.SpeedStepFactor)
	}
}
