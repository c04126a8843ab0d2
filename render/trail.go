package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/vmath"
)

// TrailRenderer accumulates each body's past positions and draws them as
// fading breadcrumbs behind the body. Trails are render-side decoration:
// they record whatever the registry's positions were at draw time, so a
// paused simulation leaves the trail frozen too
type TrailRenderer struct {
	trails [][]vmath.Vec3F
}

func NewTrailRenderer(bodyCount int) *TrailRenderer {
	return &TrailRenderer{
		trails: make([][]vmath.Vec3F, bodyCount),
	}
}

func (r *TrailRenderer) Render(ctx *Context) {
	for _, b := range ctx.Session.Registry.Bodies() {
		if b.Index >= len(r.trails) {
			continue
		}
		r.record(b.Index, b.Position())

		style := tcell.StyleDefault.Foreground(b.Entry.Color).Dim(true)
		for _, point := range r.trails[b.Index] {
			x, y := ctx.Proj.Project(point)
			if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
				continue
			}
			ctx.Screen.SetContent(x, y, '.', nil, style)
		}
	}
}

func (r *TrailRenderer) record(i int, p vmath.Vec3F) {
	trail := r.trails[i]
	if n := len(trail); n > 0 && trail[n-1] == p {
		return // stationary (paused), don't duplicate
	}
	trail = append(trail, p)
	if len(trail) > parameter.TrailRetain {
		trail = trail[len(trail)-parameter.TrailRetain:]
	}
	r.trails[i] = trail
}
