package parameter

// System Execution Priorities (lower runs first)
// Later steps read values earlier steps wrote in the same frame
const (
	PriorityBattery     = 10
	PriorityCutscene    = 20
	PriorityPhaseTimer  = 30 // cutscene end, kick-to-chase delay, dawn countdown
	PriorityLook        = 40
	PriorityVitals      = 50 // decides sprinting for audio and locomotion
	PriorityAudio       = 60
	PriorityChase       = 70 // escape check
	PriorityBoundary    = 80 // hard interrupt, halts the rest of the frame
	PriorityLocomotion  = 90
	PriorityPursuer     = 100
	PriorityShake       = 110
	PriorityDiagnostics = 120
)
