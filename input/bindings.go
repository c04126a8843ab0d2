package input

import "github.com/lixenwraith/helio/event"

// Action classifies what a key binding does
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionForward     // forwarded to the resolver as a key symbol
	ActionSpeedUp     // slider emulation, clamped
	ActionSpeedDown   // slider emulation, clamped
	ActionZoomIn      // slider emulation, clamped
	ActionZoomOut     // slider emulation, clamped
	ActionScaleToggle // button bindings carry only an event type
	ActionAutoFly
	ActionPresetSave
	ActionPresetNext
	ActionViewReset
)

// binding describes one key's behavior; button-style bindings carry the
// queue event type they emit
type binding struct {
	action Action
	emit   event.Type
}

// runeBindings maps key symbols to behaviors. Space and +/- forward to
// the resolver untouched (they mutate speed/pause without clamping, per
// the key contract); the bracket keys emulate the bounded sliders
var runeBindings = map[rune]binding{
	'q': {action: ActionQuit},

	' ': {action: ActionForward},
	'+': {action: ActionForward},
	'=': {action: ActionForward}, // unshifted '+' convenience alias
	'-': {action: ActionForward},

	']': {action: ActionSpeedUp},
	'[': {action: ActionSpeedDown},
	'}': {action: ActionZoomOut},
	'{': {action: ActionZoomIn},

	'm': {action: ActionScaleToggle, emit: event.TypeScaleToggle},
	'a': {action: ActionAutoFly, emit: event.TypeAutoFlyToggle},
	's': {action: ActionPresetSave, emit: event.TypePresetSave},
	'n': {action: ActionPresetNext, emit: event.TypePresetNext},
	'r': {action: ActionViewReset, emit: event.TypeViewReset},
}
