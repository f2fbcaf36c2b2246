package engine

// Phase is the coarse game mode governing which systems evaluate
type Phase uint8

const (
	PhaseWarning Phase = iota
	PhaseMenu
	PhaseCutscene
	PhaseGameplay
	PhasePaused
	PhaseChase
	PhaseWaitingForDawn
	PhaseDawn
)

var phaseNames = [...]string{
	PhaseWarning:        "WARNING",
	PhaseMenu:           "MENU",
	PhaseCutscene:       "CUTSCENE",
	PhaseGameplay:       "GAMEPLAY",
	PhasePaused:         "PAUSED",
	PhaseChase:          "CHASE",
	PhaseWaitingForDawn: "WAITING_FOR_DAWN",
	PhaseDawn:           "DAWN",
}

// String returns the canonical upper-case phase name
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}

// activePhases evaluate locomotion and most audio
var activePhases = map[Phase]struct{}{
	PhaseGameplay:       {},
	PhaseChase:          {},
	PhaseWaitingForDawn: {},
	PhaseDawn:           {},
}

// IsActive reports membership in the active-phase set
func (p Phase) IsActive() bool {
	_, ok := activePhases[p]
	return ok
}

// validTransitions is the single authoritative transition table
var validTransitions = map[Phase][]Phase{
	PhaseWarning:        {PhaseMenu},
	PhaseMenu:           {PhaseCutscene},
	PhaseCutscene:       {PhaseGameplay},
	PhaseGameplay:       {PhasePaused, PhaseChase, PhaseMenu},
	PhasePaused:         {PhaseGameplay, PhaseMenu},
	PhaseChase:          {PhaseWaitingForDawn},
	PhaseWaitingForDawn: {PhaseDawn},
	PhaseDawn:           {PhaseMenu},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
