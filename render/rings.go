package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/vmath"
)

// RingRenderer traces each body's orbit as a faint circle in the orbital
// plane, sampled at a fixed angular step
type RingRenderer struct {
	style tcell.Style
}

func NewRingRenderer() *RingRenderer {
	return &RingRenderer{
		style: tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Dim(true),
	}
}

func (r *RingRenderer) Render(ctx *Context) {
	for _, b := range ctx.Session.Registry.Bodies() {
		for t := 0.0; t < 2*math.Pi; t += parameter.RingStep {
			point := vmath.Vec3F{
				X: b.Radius * math.Cos(t),
				Y: b.Radius * math.Sin(t),
			}
			x, y := ctx.Proj.Project(point)
			if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
				continue
			}
			ctx.Screen.SetContent(x, y, '.', nil, r.style)
		}
	}
}
