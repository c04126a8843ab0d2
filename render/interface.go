package render

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx *Context)
}

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = 100
	PriorityRings      RenderPriority = 150
	PriorityTrails     RenderPriority = 200
	PriorityGlow       RenderPriority = 250
	PriorityEntities   RenderPriority = 300
	PriorityUI         RenderPriority = 400
)
