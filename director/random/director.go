package random

import (
	"math/rand"

	"github.com/they4kman/sweeper/game"
)

// Director clicks a random hidden, unflagged cell on every move
type Director struct {
	rand *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Next(session *game.Session) (game.CellAction, bool) {
	if session.Phase().IsTerminal() {
		return game.CellAction{}, false
	}

	var unrevealedCells []*game.Cell
	for _, cell := range session.Board().Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			unrevealedCells = append(unrevealedCells, cell)
		}
	}
	if len(unrevealedCells) == 0 {
		return game.CellAction{}, false
	}

	return unrevealedCells[director.rand.Intn(len(unrevealedCells))].Click(), true
}
