package render

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/vmath"
)

// StarfieldRenderer draws a fixed background of stars scattered on a
// spherical shell around the system. Positions are generated once at
// startup; the seed is purely cosmetic
type StarfieldRenderer struct {
	stars  []vmath.Vec3F
	styles []tcell.Style
}

// NewStarfieldRenderer generates count stars from the given seed
func NewStarfieldRenderer(count int, seed int64) *StarfieldRenderer {
	rng := rand.New(rand.NewSource(seed))

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	bright := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r := &StarfieldRenderer{
		stars:  make([]vmath.Vec3F, 0, count),
		styles: make([]tcell.Style, 0, count),
	}
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		dist := parameter.StarShellMin + rng.Float64()*(parameter.StarShellMax-parameter.StarShellMin)
		r.stars = append(r.stars, vmath.Vec3F{
			X: dist * math.Sin(phi) * math.Cos(theta),
			Y: dist * math.Sin(phi) * math.Sin(theta),
			Z: dist * math.Cos(phi),
		})
		style := dim
		if rng.Float64() < 0.2 {
			style = bright
		}
		r.styles = append(r.styles, style)
	}
	return r
}

func (r *StarfieldRenderer) Render(ctx *Context) {
	for i, star := range r.stars {
		x, y := ctx.Proj.Project(star)
		if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
			continue
		}
		ctx.Screen.SetContent(x, y, '·', nil, r.styles[i])
	}
}
