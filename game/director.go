package game

type CellAction struct {
	Index  int
	Action ActionType
}

// Director plays a session on behalf of the user
type Director interface {
	// Next returns the action to take on session, or false if there is none
	Next(session *Session) (CellAction, bool)
}
