package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/helio/parameter"
)

func newTestSession(t *testing.T) (*Session, *MockTimeProvider) {
	t.Helper()
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	s, err := NewSession(testEntries(), mock)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, mock
}

func TestTickAdvancesByWallDeltaSpeedAndCadence(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)
	s.SetSpeed(1.0)

	delta := 100 * time.Millisecond
	mock.Advance(delta)
	tick.Tick(delta)

	wantStep := delta.Seconds() * 1.0 * parameter.CadenceFactor
	for _, b := range s.Registry.Bodies() {
		want := b.AngularSpeed * wantStep
		if math.Abs(b.Angle-want) > angleTolerance {
			t.Errorf("%s: expected angle %v, got %v", b.Name, want, b.Angle)
		}
	}
}

func TestTickHonorsSpeedMultiplier(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)
	s.SetSpeed(2.0)

	delta := 50 * time.Millisecond
	mock.Advance(delta)
	tick.Tick(delta)

	b, _ := s.Registry.Lookup(0)
	want := b.AngularSpeed * delta.Seconds() * 2.0 * parameter.CadenceFactor
	if math.Abs(b.Angle-want) > angleTolerance {
		t.Errorf("Expected angle %v at speed 2.0, got %v", want, b.Angle)
	}
}

func TestTickWhilePausedMutatesNothing(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)

	mock.Advance(time.Second)
	tick.Tick(time.Second)
	s.Registry.TriggerPulse(0, s.Clock.Now())

	s.TogglePause()
	glowBefore := s.GlowRadius()
	b, _ := s.Registry.Lookup(0)
	angleBefore := b.Angle

	mock.Advance(10 * time.Second)
	tick.Tick(10 * time.Second)

	if b.Angle != angleBefore {
		t.Errorf("Paused tick advanced angle from %v to %v", angleBefore, b.Angle)
	}
	if b.Pulse == nil {
		t.Error("Paused tick expired a pulse")
	}
	if s.GlowRadius() != glowBefore {
		t.Error("Paused tick updated glow radius")
	}
}

func TestPauseResumeYieldsZeroNetAngle(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)
	s.SetSpeed(1.0)

	step := 16 * time.Millisecond
	run := func(frames int) {
		for i := 0; i < frames; i++ {
			mock.Advance(step)
			tick.Tick(step)
		}
	}

	run(10)
	b, _ := s.Registry.Lookup(0)
	angleAtPause := b.Angle

	s.TogglePause()
	run(100) // wall clock advances, simulation must not
	if b.Angle != angleAtPause {
		t.Fatalf("Angle changed during pause: %v -> %v", angleAtPause, b.Angle)
	}
	s.TogglePause()

	run(10)
	want := angleAtPause + b.AngularSpeed*float64(10)*step.Seconds()*parameter.CadenceFactor
	if math.Abs(b.Angle-want) > angleTolerance {
		t.Errorf("Expected angle %v after resume, got %v", want, b.Angle)
	}
}

func TestTickExpiresPulses(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)

	b, _ := s.Registry.Lookup(0)
	original := b.Color
	s.Registry.TriggerPulse(0, s.Clock.Now())

	mock.Advance(parameter.PulseDuration + 10*time.Millisecond)
	tick.Tick(parameter.PulseDuration + 10*time.Millisecond)

	if b.Pulse != nil {
		t.Fatal("Expected pulse expired by tick")
	}
	if b.Color != original {
		t.Errorf("Expected color restored to %v, got %v", original, b.Color)
	}
}

func TestPulseSurvivesPauseWindow(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)

	s.Registry.TriggerPulse(0, s.Clock.Now())

	// Halfway into the window, pause for far longer than the duration
	mock.Advance(parameter.PulseDuration / 2)
	tick.Tick(parameter.PulseDuration / 2)
	s.TogglePause()
	mock.Advance(10 * parameter.PulseDuration)
	tick.Tick(10 * parameter.PulseDuration)
	s.TogglePause()

	// Pulse timestamps are game time: the remaining half window still applies
	b, _ := s.Registry.Lookup(0)
	mock.Advance(parameter.PulseDuration / 4)
	tick.Tick(parameter.PulseDuration / 4)
	if b.Pulse == nil {
		t.Fatal("Pulse expired during pause despite frozen game time")
	}

	mock.Advance(parameter.PulseDuration)
	tick.Tick(parameter.PulseDuration)
	if b.Pulse != nil {
		t.Error("Pulse not expired after its game-time window passed")
	}
}

func TestGlowOscillation(t *testing.T) {
	s, mock := newTestSession(t)
	tick := NewTickEngine(s)

	mock.Advance(2 * time.Second)
	tick.Tick(2 * time.Second)

	want := s.SunRadius() * (parameter.GlowBase + parameter.GlowAmplitude*math.Sin(parameter.GlowRate*2.0))
	if math.Abs(s.GlowRadius()-want) > 1e-12 {
		t.Errorf("Expected glow radius %v, got %v", want, s.GlowRadius())
	}
}
