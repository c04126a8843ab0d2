package render

import (
	"github.com/gdamore/tcell/v2"
)

// BodyRenderer draws the planets, their labels, and publishes projected
// extents to the pick map for pointer resolution
type BodyRenderer struct{}

func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{}
}

func (r *BodyRenderer) Render(ctx *Context) {
	for _, b := range ctx.Session.Registry.Bodies() {
		x, y := ctx.Proj.Project(b.Position())
		extent := ctx.Proj.ExtentCells(b.VisualSize)
		ctx.Picks.Mark(b.Index, x, y, extent)

		if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
			continue
		}

		style := tcell.StyleDefault.Foreground(b.Color)
		if b.Pulse != nil {
			style = style.Bold(true)
		}
		ctx.Screen.SetContent(x, y, bodyRune(b.VisualSize), nil, style)

		labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Dim(true)
		if ctx.Session.Selected() == b.Index {
			labelStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		if y-1 >= 0 {
			ctx.DrawText(x+2, y-1, labelStyle, b.Name)
		}
	}
}

// bodyRune picks a glyph by visual size so gas giants read larger than
// the inner planets
func bodyRune(size float64) rune {
	switch {
	case size >= 0.5:
		return 'O'
	case size >= 0.3:
		return 'o'
	default:
		return '•'
	}
}
