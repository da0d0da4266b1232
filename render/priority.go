package render

// RenderPriority determines layer order. Lower values render first
type RenderPriority int

const (
	PriorityFood RenderPriority = iota
	PrioritySnake
)
