package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityWorld RenderPriority = iota
	PriorityPostProcess
	PriorityHUD
	PriorityMenu
	PriorityOverlay
	PriorityDebug
)
