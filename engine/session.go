package engine

import (
	"fmt"

	"github.com/lixenwraith/helio/catalog"
	"github.com/lixenwraith/helio/event"
	"github.com/lixenwraith/helio/parameter"
)

// NoSelection marks a session with no body selected
const NoSelection = -1

// Session owns all global simulation state: pause, speed multiplier,
// scale mode, auto-fly, current viewpoint and the info message log.
// Everything here is mutated only through its setters, called from the
// resolver and tick engine on the coordinator goroutine
type Session struct {
	Clock    *PausableClock
	Time     TimeProvider
	Queue    *event.Queue
	Registry *Registry
	Camera   *CameraController

	speed      float64
	mode       parameter.ScaleMode
	autoFly    bool
	viewpoint  Viewpoint
	glowRadius float64
	selected   int

	info *InfoLog
}

// NewSession validates the catalog and builds the full simulation state.
// The initial speed multiplier is seeded from the active scale preset
func NewSession(entries []catalog.Entry, provider TimeProvider) (*Session, error) {
	if err := catalog.Validate(entries); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	mode := parameter.ScaleVisible
	s := &Session{
		Clock:     NewPausableClock(provider),
		Time:      provider,
		Queue:     event.NewQueue(),
		Registry:  NewRegistry(entries, mode),
		Camera:    NewCameraController(),
		speed:     parameter.Resolve(mode).Speed,
		mode:      mode,
		viewpoint: DefaultViewpoint(),
		selected:  NoSelection,
		info:      NewInfoLog(parameter.InfoLogCapacity),
	}
	s.glowRadius = s.SunRadius() * parameter.GlowBase
	return s, nil
}

// Speed returns the current speed multiplier
func (s *Session) Speed() float64 {
	return s.speed
}

// SetSpeed assigns the speed multiplier. Non-positive values are ignored:
// the multiplier invariant is speed > 0, pause is a separate flag
func (s *Session) SetSpeed(v float64) {
	if v > 0 {
		s.speed = v
	}
}

// ScaleMode returns the active scale preset
func (s *Session) ScaleMode() parameter.ScaleMode {
	return s.mode
}

// ToggleScale flips the scale preset and rescales every body in place
func (s *Session) ToggleScale() parameter.ScaleMode {
	s.mode = s.mode.Toggle()
	s.Registry.ApplyScale(s.mode)
	return s.mode
}

// Paused reports whether simulated time is frozen
func (s *Session) Paused() bool {
	return s.Clock.IsPaused()
}

// TogglePause flips the run state machine between Running and Paused
func (s *Session) TogglePause() {
	if s.Clock.IsPaused() {
		s.Clock.Resume()
	} else {
		s.Clock.Pause()
	}
}

// AutoFly reports whether the camera derives its forward direction from
// elapsed time instead of user input
func (s *Session) AutoFly() bool {
	return s.autoFly
}

// ToggleAutoFly flips the auto-fly camera mode
func (s *Session) ToggleAutoFly() bool {
	s.autoFly = !s.autoFly
	return s.autoFly
}

// Viewpoint returns the current camera snapshot
func (s *Session) Viewpoint() Viewpoint {
	return s.viewpoint
}

// SetViewpoint applies a camera snapshot
func (s *Session) SetViewpoint(vp Viewpoint) {
	s.viewpoint = vp
}

// Selected returns the selected body index, or NoSelection
func (s *Session) Selected() int {
	return s.selected
}

// Select marks body i as selected and publishes its metadata to the info
// surface
func (s *Session) Select(b *Body) {
	s.selected = b.Index
	s.info.Push(fmt.Sprintf("Selected: %s / %s", b.Name, b.LocalName))
	s.info.Push(fmt.Sprintf("  Distance (AU): %g", b.TrueAU))
	s.info.Push(fmt.Sprintf("  Radius (km): %g", b.TrueRadiusK))
	s.info.Push(fmt.Sprintf("  Orbital period (days): %g", b.PeriodDays))
	s.info.Push(fmt.Sprintf("  Visual distance: %g", b.VisDistance))
}

// SunRadius returns the sun's visual radius under the active scale preset
func (s *Session) SunRadius() float64 {
	return parameter.SunRadiusUnit * parameter.Resolve(s.mode).Radius
}

// GlowRadius returns the current ambient glow radius
func (s *Session) GlowRadius() float64 {
	return s.glowRadius
}

// Info returns the session message log
func (s *Session) Info() *InfoLog {
	return s.info
}

// InfoLog is a bounded append-only message list for the info panel
type InfoLog struct {
	lines []string
	cap   int
}

// NewInfoLog creates a log keeping the most recent capacity lines
func NewInfoLog(capacity int) *InfoLog {
	return &InfoLog{cap: capacity}
}

// Push appends a line, dropping the oldest beyond capacity
func (l *InfoLog) Push(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.cap {
		l.lines = l.lines[len(l.lines)-l.cap:]
	}
}

// Lines returns the retained lines, oldest first
func (l *InfoLog) Lines() []string {
	return l.lines
}
