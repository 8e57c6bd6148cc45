package game

type Phase int

const (
	Idle Phase = iota
	Running
	Won
	Lost
)

var phaseNames = map[Phase]string{
	Idle:    "idle",
	Running: "running",
	Won:     "won",
	Lost:    "lost",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal returns whether no further moves are accepted in this phase
func (phase Phase) IsTerminal() bool {
	return phase == Won || phase == Lost
}

type ActionType int

const (
	Click ActionType = iota
	RightClick
	MiddleClick
)

const (
	// Every penaltyInterval ticks of a running session cost one point
	penaltyInterval = 15
	// Points awarded per mine when a session is won
	winBonusPerMine = 10
)
