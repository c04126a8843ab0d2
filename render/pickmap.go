package render

import "github.com/lixenwraith/helio/event"

type pickMark struct {
	body   int
	x, y   int
	extent int
}

// PickMap records where each body was drawn last frame so mouse presses
// can be resolved to a body identity. Written by the body renderer and
// read by the input layer, both on the coordinator goroutine
type PickMap struct {
	marks []pickMark
}

// NewPickMap creates an empty pick map
func NewPickMap() *PickMap {
	return &PickMap{}
}

// Reset clears all marks at the start of a frame
func (m *PickMap) Reset() {
	m.marks = m.marks[:0]
}

// Mark records a body's projected cell and extent
func (m *PickMap) Mark(body, x, y, extent int) {
	m.marks = append(m.marks, pickMark{body: body, x: x, y: y, extent: extent})
}

// Resolve returns the body under the given cell, or event.NoBody.
// Horizontal tolerance is doubled to match the cell aspect ratio; when
// extents overlap the nearest mark wins
func (m *PickMap) Resolve(x, y int) int {
	best := event.NoBody
	bestDist := -1
	for _, mk := range m.marks {
		dx := absInt(x - mk.x)
		dy := absInt(y - mk.y)
		if dx > mk.extent*2 || dy > mk.extent {
			continue
		}
		dist := dx + dy*2
		if best == event.NoBody || dist < bestDist {
			best = mk.body
			bestDist = dist
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
