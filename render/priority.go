package render

// RenderPriority determines backend draw order. Lower values draw first
type RenderPriority int

const (
	PriorityScreen RenderPriority = iota
	PriorityCapture
	PriorityDebug
)
