package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/they4kman/sweeper/util/collections"
)

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    []Cell

	numFlags  int
	numHidden int // non-mine cells not yet revealed

	seed int64
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// NumHidden returns the number of non-mine cells still to be revealed
func (board *Board) NumHidden() int {
	return board.numHidden
}

// Seed returns the seed the mines were placed with, or 0 if unknown
func (board *Board) Seed() int64 {
	return board.seed
}

// IsCleared returns whether every non-mine cell has been revealed
func (board *Board) IsCleared() bool {
	return board.numHidden == 0
}

func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.size && y < board.size {
		return &board.cells[y*board.size+x]
	}
	return nil
}

// Cell returns the cell at the row-major index, or nil if out of range
func (board *Board) Cell(index int) *Cell {
	if index >= 0 && index < len(board.cells) {
		return &board.cells[index]
	}
	return nil
}

func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, len(board.cells))
	for i := range board.cells {
		cells[i] = &board.cells[i]
	}
	return cells
}

func (board *Board) cell(index int) (*Cell, error) {
	cell := board.Cell(index)
	if cell == nil {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "index %d on a board of %d cells", index, len(board.cells))
	}
	return cell, nil
}

// revealMines uncovers every mine, for showing the board after a loss
func (board *Board) revealMines() {
	for i := range board.cells {
		if cell := &board.cells[i]; cell.isMine {
			cell.reveal()
		}
	}
}

func validateConfig(size, numMines int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "board size %d", size)
	}
	if numMines <= 0 || numMines >= size*size {
		return errors.Wrapf(ErrInvalidConfiguration, "%d mines on a %dx%d board", numMines, size, size)
	}
	return nil
}

// Generate builds a board with numMines mines placed uniformly at random
func Generate(size, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateConfig(size, numMines); err != nil {
		return nil, err
	}

	board := createBoard(size)
	board.fillMines(drawMines(size*size, numMines, rng))
	return board, nil
}

// GenerateSeeded is Generate with a fresh source for seed, recording the seed
// so the board can be snapshotted and replayed
func GenerateSeeded(size, numMines int, seed int64) (*Board, error) {
	board, err := Generate(size, numMines, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	board.seed = seed
	return board, nil
}

func createBoard(size int) *Board {
	board := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}

	for idx := range board.cells {
		cell := &board.cells[idx]
		cell.board = board
		cell.idx = idx
		cell.x, cell.y = idx%size, idx/size
	}

	return board
}

// drawMines picks numMines distinct indexes in [0, numCells). Sparse boards
// reject and redraw duplicates; dense boards take a prefix of a shuffle, as
// rejection sampling degrades when most draws collide.
func drawMines(numCells, numMines int, rng *rand.Rand) []int {
	if numMines*2 > numCells {
		cellIndexes := rng.Perm(numCells)
		return cellIndexes[:numMines]
	}

	mines := make([]int, 0, numMines)
	drawn := make(collections.Set[int], numMines)
	for len(mines) < numMines {
		idx := rng.Intn(numCells)
		if drawn.Contains(idx) {
			continue
		}
		drawn.Add(idx)
		mines = append(mines, idx)
	}
	return mines
}

// fillMines marks the given cells as mines and computes neighbor counts.
// Counts are never touched again afterwards.
func (board *Board) fillMines(mineIndexes []int) {
	for _, idx := range mineIndexes {
		board.cells[idx].isMine = true
	}
	board.countMines()
}

func (board *Board) countMines() {
	board.numMines = 0
	for i := range board.cells {
		cell := &board.cells[i]
		cell.numMines = 0
		if cell.isMine {
			board.numMines++
		}
	}

	for i := range board.cells {
		cell := &board.cells[i]
		if !cell.isMine {
			continue
		}
		cell.visitNeighbors(func(neighbor *Cell) {
			if !neighbor.isMine {
				neighbor.numMines++
			}
		})
	}

	board.numHidden = len(board.cells) - board.numMines
}
