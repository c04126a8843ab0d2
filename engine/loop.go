package engine

import "time"

// Loop is the coordinator tying resolver, tick engine and camera into one
// cooperative scheduling cycle. It is driven from the main goroutine and
// is the only consumer of the event queue, which keeps every mutation on
// a single writer even when producers live elsewhere
type Loop struct {
	s        *Session
	tick     *TickEngine
	resolver *Resolver
	lastWall time.Time
}

// NewLoop creates the coordinator. sound may be nil
func NewLoop(s *Session, sound SoundPlayer) *Loop {
	return &Loop{
		s:        s,
		tick:     NewTickEngine(s),
		resolver: NewResolver(s, sound),
		lastWall: s.Time.Now(),
	}
}

// Step runs one scheduling cycle: measure the wall delta, drain and
// resolve pending events, tick, then derive the auto-fly viewpoint.
// Events are processed even while paused so unpausing works; the tick
// itself early-returns when paused
func (l *Loop) Step() {
	now := l.s.Time.Now()
	wallDelta := now.Sub(l.lastWall)
	l.lastWall = now

	for _, ev := range l.s.Queue.Consume() {
		l.resolver.Apply(ev)
	}

	l.tick.Tick(wallDelta)

	if l.s.AutoFly() && !l.s.Paused() {
		vp := l.s.Viewpoint()
		vp.Forward = AutoFlyForward(l.s.Clock.GameElapsed())
		l.s.SetViewpoint(vp)
	}
}
