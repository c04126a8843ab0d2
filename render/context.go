package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/helio/engine"
)

// Context carries everything renderers need for one frame
type Context struct {
	Screen  tcell.Screen
	Width   int
	Height  int
	Session *engine.Session
	Proj    Projection
	Picks   *PickMap
}

// NewContext builds the per-frame context: the projection is derived from
// the session's current viewpoint, and the pick map is reset so this
// frame's body extents replace last frame's
func NewContext(screen tcell.Screen, s *engine.Session, picks *PickMap) *Context {
	width, height := screen.Size()
	picks.Reset()
	return &Context{
		Screen:  screen,
		Width:   width,
		Height:  height,
		Session: s,
		Proj:    NewProjection(s.Viewpoint(), width, height),
		Picks:   picks,
	}
}

// DrawText writes a string at (x, y), advancing by rune display width so
// wide glyphs (the localized names) keep their columns aligned
func (c *Context) DrawText(x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= c.Width {
			return
		}
		c.Screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
