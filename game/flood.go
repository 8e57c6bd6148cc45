package game

import "github.com/gammazero/deque"

type Visitor func(*Cell)

// Reveal uncovers the cell at index on board. It returns the number of
// non-mine cells newly revealed and whether the cell was a mine. Revealing an
// already revealed cell does nothing. A cell with no neighboring mines
// floods outwards through its empty region.
func Reveal(board *Board, index int) (revealed int, hitMine bool, err error) {
	cell, err := board.cell(index)
	if err != nil {
		return 0, false, err
	}

	switch {
	case cell.isRevealed:
		return 0, false, nil
	case cell.isMine:
		cell.isLosingMine = true
		cell.reveal()
		return 0, true, nil
	case cell.numMines > 0:
		cell.reveal()
		return 1, false, nil
	default:
		return flood(cell, func(cell *Cell) { cell.reveal() }), false, nil
	}
}

// flood visits every cell of the empty region containing origin, along with
// the numbered cells bordering it. Only empty cells push their neighbors, and
// an empty cell has no mine neighbors, so mines are never visited.
func flood(origin *Cell, visit Visitor) int {
	var stack deque.Deque
	stack.PushBack(origin)

	visited := 0
	for stack.Len() > 0 {
		cell := stack.PopBack().(*Cell)
		if cell.isRevealed {
			continue
		}

		visit(cell)
		visited++

		if cell.numMines == 0 {
			cell.visitNeighbors(func(neighbor *Cell) {
				if !neighbor.isRevealed {
					stack.PushBack(neighbor)
				}
			})
		}
	}

	return visited
}
