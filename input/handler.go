package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/engine"
	"github.com/lixenwraith/helio/event"
	"github.com/lixenwraith/helio/parameter"
)

// Picker resolves a screen cell to a body index, or event.NoBody.
// The render layer's pick map implements this
type Picker interface {
	Resolve(x, y int) int
}

// Handler translates terminal events into queue events. It never mutates
// simulation state directly: the session reference is read-only here, used
// to compute clamped slider values from the current ones
type Handler struct {
	session *engine.Session
	picker  Picker

	lastButtons tcell.ButtonMask
}

// NewHandler creates an input handler pushing into the session's queue
func NewHandler(session *engine.Session, picker Picker) *Handler {
	return &Handler{session: session, picker: picker}
}

// HandleEvent processes one terminal event. Returns false on a quit
// request
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	key := ev.Rune()
	b, ok := runeBindings[key]
	if !ok {
		return true // unbound key, normal no-op
	}

	switch b.action {
	case ActionQuit:
		return false

	case ActionForward:
		if key == '=' {
			key = '+'
		}
		h.push(event.SimEvent{Type: event.TypeKeyPress, Payload: &event.KeyPressPayload{Key: key}})

	case ActionSpeedUp, ActionSpeedDown:
		step := parameter.SpeedSlideStep
		if b.action == ActionSpeedDown {
			step = -step
		}
		value := clamp(h.session.Speed()+step, parameter.SpeedMin, parameter.SpeedMax)
		h.push(event.SimEvent{Type: event.TypeSpeedSet, Payload: &event.ValuePayload{Value: value}})

	case ActionZoomIn, ActionZoomOut:
		step := parameter.ZoomSlideStep
		if b.action == ActionZoomIn {
			step = -step
		}
		value := clamp(h.session.Viewpoint().Range+step, parameter.ZoomMin, parameter.ZoomMax)
		h.push(event.SimEvent{Type: event.TypeZoomSet, Payload: &event.ValuePayload{Value: value}})

	default:
		h.push(event.SimEvent{Type: b.emit})
	}
	return true
}

// handleMouse enqueues a pointer-down on the press edge of button 1,
// carrying whatever body the pick map resolves under the cursor
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	body := event.NoBody
	if h.picker != nil {
		body = h.picker.Resolve(x, y)
	}
	h.push(event.SimEvent{Type: event.TypePointerDown, Payload: &event.PointerDownPayload{Body: body}})
}

func (h *Handler) push(ev event.SimEvent) {
	h.session.Queue.Push(ev)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
