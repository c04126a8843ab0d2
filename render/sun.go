package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/vmath"
)

// SunRenderer draws the sun at the system center with its pulsating
// ambient glow. The glow radius comes from the tick engine; this renderer
// only rasterizes it
type SunRenderer struct {
	sunStyle  tcell.Style
	glowStyle tcell.Style
}

func NewSunRenderer() *SunRenderer {
	return &SunRenderer{
		sunStyle:  tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
		glowStyle: tcell.StyleDefault.Foreground(tcell.ColorOrange).Dim(true),
	}
}

func (r *SunRenderer) Render(ctx *Context) {
	cx, cy := ctx.Proj.Project(vmath.Vec3F{})
	glow := ctx.Proj.ExtentCells(ctx.Session.GlowRadius())

	for dy := -glow; dy <= glow; dy++ {
		for dx := -glow * 2; dx <= glow*2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			// Diamond falloff matching the cell aspect ratio
			if absInt(dx)+absInt(dy)*2 > glow*2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
				continue
			}
			ctx.Screen.SetContent(x, y, '░', nil, r.glowStyle)
		}
	}

	if cx >= 0 && cx < ctx.Width && cy >= 0 && cy < ctx.Height {
		ctx.Screen.SetContent(cx, cy, 'O', nil, r.sunStyle)
	}
}
