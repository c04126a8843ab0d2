package parameter

import "time"

// Simulation cadence and rate limits
const (
	// CadenceFactor converts wall seconds into simulated days together with
	// the speed multiplier: step = wallDelta * speed * CadenceFactor
	CadenceFactor = 30.0

	// PulseDuration is how long a selection highlight stays on a body,
	// measured in game time so pause freezes the window
	PulseDuration = 120 * time.Millisecond

	// SpeedMin and SpeedMax bound the speed slider path. The +/- keys are
	// deliberately unbounded
	SpeedMin = 0.05
	SpeedMax = 4.0

	// SpeedStepFactor is the multiplier applied per +/- keypress
	SpeedStepFactor = 1.2

	// SpeedSlideStep is the additive step of the slider emulation keys
	SpeedSlideStep = 0.25
)

// Engine timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event queue sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo (EventQueueSize - 1)
	EventBufferMask = EventQueueSize - 1
)

// InfoLogCapacity bounds the session message log shown in the info panel
const InfoLogCapacity = 8
