package game

import "github.com/sirupsen/logrus"

// Session is a single play-through of one board. Its methods must not be
// called concurrently.
type Session struct {
	engine *Engine
	log    logrus.FieldLogger

	board      *Board
	difficulty Difficulty

	phase   Phase
	elapsed int
	score   int
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Difficulty() Difficulty {
	return session.difficulty
}

func (session *Session) Phase() Phase {
	return session.phase
}

func (session *Session) Score() int {
	return session.score
}

// Elapsed returns the number of ticks counted while running
func (session *Session) Elapsed() int {
	return session.elapsed
}

// MinesLeft returns the number of mines not accounted for by a flag
func (session *Session) MinesLeft() int {
	return session.board.numMines - session.board.numFlags
}

func (session *Session) Apply(action CellAction) error {
	switch action.Action {
	case Click:
		return session.Reveal(action.Index)
	case RightClick:
		return session.ToggleFlag(action.Index)
	case MiddleClick:
		return session.Chord(action.Index)
	}
	return nil
}

// Reveal uncovers a cell. Uncovering a mine loses the session; uncovering
// the last safe cell wins it. Each newly revealed safe cell scores a point.
func (session *Session) Reveal(index int) error {
	if session.phase.IsTerminal() {
		return nil
	}

	cell, err := session.board.cell(index)
	if err != nil {
		return err
	}
	if cell.isRevealed {
		return nil
	}

	session.start()

	revealed, hitMine, err := Reveal(session.board, index)
	if err != nil {
		return err
	}

	if hitMine {
		session.lose(cell)
		return nil
	}

	session.score += revealed
	session.log.WithFields(logrus.Fields{
		"index":    index,
		"revealed": revealed,
		"score":    session.score,
	}).Debug("revealed")

	if session.board.IsCleared() {
		session.win()
	}
	return nil
}

// ToggleFlag flags or unflags a hidden cell
func (session *Session) ToggleFlag(index int) error {
	if session.phase.IsTerminal() {
		return nil
	}

	cell, err := session.board.cell(index)
	if err != nil {
		return err
	}

	session.start()

	if !cell.isRevealed {
		cell.toggleFlagged()
	}
	return nil
}

// Chord reveals the hidden, unflagged neighbors of a revealed number whose
// neighboring flags already account for all of its mines
func (session *Session) Chord(index int) error {
	if session.phase.IsTerminal() {
		return nil
	}

	cell, err := session.board.cell(index)
	if err != nil {
		return err
	}
	if !cell.isRevealed || cell.isMine || cell.numMines == 0 {
		return nil
	}

	numFlaggedNeighbors := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.IsFlagged() {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.numMines {
		return nil
	}

	for _, neighbor := range cell.Neighbors() {
		if neighbor.isRevealed || neighbor.isFlagged {
			continue
		}
		if err := session.Reveal(neighbor.idx); err != nil {
			return err
		}
		if session.phase.IsTerminal() {
			break
		}
	}
	return nil
}

// Tick counts one unit of time while the session is running. Every 15th
// tick costs a point.
func (session *Session) Tick() {
	if session.phase != Running {
		return
	}

	session.elapsed++
	if session.elapsed%penaltyInterval == 0 {
		session.score--
	}
}

func (session *Session) start() {
	if session.phase == Idle {
		session.phase = Running
		session.log.Debug("session running")
	}
}

func (session *Session) lose(cell *Cell) {
	session.phase = Lost
	session.board.revealMines()

	session.log.WithFields(logrus.Fields{
		"cell":    cell.String(),
		"score":   session.score,
		"elapsed": session.elapsed,
	}).Info("session lost")

	session.engine.onGameEnd(session)
}

func (session *Session) win() {
	session.phase = Won
	session.score += session.board.numMines * winBonusPerMine

	session.log.WithFields(logrus.Fields{
		"score":   session.score,
		"elapsed": session.elapsed,
	}).Info("session won")

	session.engine.onGameEnd(session)
}
