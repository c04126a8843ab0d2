package parameter

// Canonical viewpoint used by reset and at startup
const (
	// DefaultRange is the half-extent of the view volume in world units
	DefaultRange = 10.0

	// ZoomMin and ZoomMax bound the camera range slider path
	ZoomMin = 5.0
	ZoomMax = 40.0

	// ZoomSlideStep is the additive step of the zoom adjust keys
	ZoomSlideStep = 2.0
)

// Default forward/up components of the canonical viewpoint
const (
	DefaultForwardX = 0.0
	DefaultForwardY = -0.3
	DefaultForwardZ = -1.0

	DefaultUpX = 0.0
	DefaultUpY = 1.0
	DefaultUpZ = 0.0
)

// Auto-fly sweep parameters: the camera forward direction traces an
// ellipse-like path as a pure function of elapsed game time
const (
	AutoFlyRate     = 0.2 // radians per second of sweep phase
	AutoFlyScaleX   = 0.2
	AutoFlyForwardY = -0.3
	AutoFlyScaleZ   = 0.8
)
