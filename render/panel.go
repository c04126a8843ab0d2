package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var captionLines = []string{
	"click planet: details   space: pause   +/-: speed",
	"s: save preset  n: next preset  r: reset view  a: auto-fly  m: scale  q: quit",
}

// InfoPanelRenderer draws the controls caption and the session message
// log (selection details, preset messages, errors)
type InfoPanelRenderer struct {
	captionStyle tcell.Style
	infoStyle    tcell.Style
}

func NewInfoPanelRenderer() *InfoPanelRenderer {
	return &InfoPanelRenderer{
		captionStyle: tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		infoStyle:    tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

func (r *InfoPanelRenderer) Render(ctx *Context) {
	for i, line := range captionLines {
		ctx.DrawText(1, i, r.captionStyle, line)
	}

	lines := ctx.Session.Info().Lines()
	top := ctx.Height - 1 - len(lines)
	if top < len(captionLines) {
		top = len(captionLines)
	}
	for i, line := range lines {
		y := top + i
		if y >= ctx.Height-1 {
			break
		}
		ctx.DrawText(1, y, r.infoStyle, line)
	}
}

// StatusBarRenderer draws one line of global state at the bottom of the
// screen: speed, scale mode, pause/auto-fly flags and preset count
type StatusBarRenderer struct {
	style tcell.Style
}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		style: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray),
	}
}

func (r *StatusBarRenderer) Render(ctx *Context) {
	s := ctx.Session

	state := "running"
	if s.Paused() {
		state = "PAUSED"
	}
	fly := ""
	if s.AutoFly() {
		fly = "  auto-fly"
	}
	line := fmt.Sprintf(" %s  speed x%.2f  scale: %s  range %.0f  presets: %d%s",
		state, s.Speed(), s.ScaleMode(), s.Viewpoint().Range, s.Camera.Count(), fly)

	y := ctx.Height - 1
	for x := 0; x < ctx.Width; x++ {
		ctx.Screen.SetContent(x, y, ' ', nil, r.style)
	}
	ctx.DrawText(0, y, r.style, line)
}
