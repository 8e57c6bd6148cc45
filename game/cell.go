package game

import "fmt"

type Cell struct {
	board *Board

	x, y     int
	idx      int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isRevealed:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isRevealed:
		return "."
	case cell.isFlagged:
		return "f"
	default:
		return "#"
	}
}

// deserialize applies the mine layout of c. Revealed and flagged state is
// applied separately, once neighbor counts are known.
func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true
	case '.', 'f', '#':
		cell.isMine = false
	default:
		return false
	}
	return true
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Index() int {
	return cell.idx
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

// IsFlagged always reads false once the cell is revealed
func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged && !cell.isRevealed
}

// IsLosingMine returns whether this is the mine whose reveal lost the game
func (cell *Cell) IsLosingMine() bool {
	return cell.isLosingMine
}

// NumMines returns the number of mines among the cell's neighbors
func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, 8)
	cell.visitNeighbors(func(neighbor *Cell) {
		neighbors = append(neighbors, neighbor)
	})
	return neighbors
}

func (cell *Cell) visitNeighbors(visit Visitor) {
	board := cell.board

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.size-1

	if cell.x >= 1 {
		visit(board.CellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			visit(board.CellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			visit(board.CellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.size-1 {
		visit(board.CellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			visit(board.CellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			visit(board.CellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		visit(board.CellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		visit(board.CellAt(cell.x, cell.y+1))
	}
}

func (cell *Cell) Click() CellAction {
	return CellAction{
		Index:  cell.idx,
		Action: Click,
	}
}

func (cell *Cell) RightClick() CellAction {
	return CellAction{
		Index:  cell.idx,
		Action: RightClick,
	}
}

func (cell *Cell) MiddleClick() CellAction {
	return CellAction{
		Index:  cell.idx,
		Action: MiddleClick,
	}
}

func (cell *Cell) toggleFlagged() {
	cell.setFlagged(!cell.isFlagged)
}

func (cell *Cell) setFlagged(isFlagged bool) {
	if cell.isFlagged == isFlagged {
		return
	}
	cell.isFlagged = isFlagged

	if cell.isFlagged {
		cell.board.numFlags++
	} else {
		cell.board.numFlags--
	}
}

// reveal uncovers the cell, clearing any flag on it
func (cell *Cell) reveal() {
	if cell.isRevealed {
		return
	}

	cell.setFlagged(false)
	cell.isRevealed = true

	if !cell.isMine {
		cell.board.numHidden--
	}
}
