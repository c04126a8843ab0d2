package event

// Type identifies a simulation input event
type Type int

const (
	// TypePointerDown carries a resolved pick result from a mouse press
	// Trigger: input layer after PickMap resolution
	// Consumer: Resolver | Payload: *PointerDownPayload
	TypePointerDown Type = iota

	// TypeKeyPress carries a bound key symbol (space, '+', '-')
	// Consumer: Resolver | Payload: *KeyPressPayload
	TypeKeyPress

	// TypeSpeedSet assigns the speed multiplier directly
	// Trigger: speed slider emulation, value pre-clamped by input layer
	// Consumer: Resolver | Payload: *ValuePayload
	TypeSpeedSet

	// TypeZoomSet assigns the camera range directly
	// Trigger: zoom slider emulation, value pre-clamped by input layer
	// Consumer: Resolver | Payload: *ValuePayload
	TypeZoomSet

	// TypeScaleToggle flips between the visible and realistic scale presets
	// Consumer: Resolver | Payload: nil
	TypeScaleToggle

	// TypeAutoFlyToggle flips the auto-fly camera mode
	// Consumer: Resolver | Payload: nil
	TypeAutoFlyToggle

	// TypePresetSave snapshots the current viewpoint
	// Consumer: Resolver | Payload: nil
	TypePresetSave

	// TypePresetNext cycles to the next saved viewpoint
	// Consumer: Resolver | Payload: nil
	TypePresetNext

	// TypeViewReset restores the canonical viewpoint
	// Consumer: Resolver | Payload: nil
	TypeViewReset
)

// SimEvent is one discrete input event delivered through the queue
type SimEvent struct {
	Type    Type
	Payload any
}
