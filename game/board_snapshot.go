package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing board snapshot")
	}

	return string(out), nil
}

// CreateBoard rebuilds the snapshotted board. With fresh set, all cells start
// out hidden and unflagged.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	board, err := BoardFromLayout(snapshot.SerializedBoard)
	if err != nil {
		return nil, err
	}
	board.seed = snapshot.Seed

	if fresh {
		for i := range board.cells {
			cell := &board.cells[i]
			cell.isRevealed = false
			cell.isFlagged = false
			cell.isLosingMine = false
		}
		board.numFlags = 0
		board.numHidden = len(board.cells) - board.numMines
	}

	return board, nil
}

func (board *Board) Snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: board.Layout(),
	}
}

// Layout renders the board one character per cell, one row per line:
// '#' hidden, '.' revealed, 'f' flagged, and for mines 'O' hidden,
// 'F' flagged, '*' revealed.
func (board *Board) Layout() string {
	var layout strings.Builder
	for y := 0; y < board.size; y++ {
		if y > 0 {
			layout.WriteByte('\n')
		}
		for x := 0; x < board.size; x++ {
			layout.WriteString(board.CellAt(x, y).serialize())
		}
	}
	return layout.String()
}

// BoardFromLayout parses a board written in the Layout format
func BoardFromLayout(layout string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	size := len(rows)
	for y, row := range rows {
		if len(row) != size {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, expected %d", y, len(row), size)
		}
	}

	board := createBoard(size)
	for y, row := range rows {
		for x, c := range row {
			if !board.CellAt(x, y).deserialize(c) {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", c, x, y)
			}
		}
	}
	board.countMines()

	if err := validateConfig(size, board.numMines); err != nil {
		return nil, err
	}

	for y, row := range rows {
		for x, c := range row {
			cell := board.CellAt(x, y)
			switch c {
			case '*', '.':
				cell.reveal()
			case 'f', 'F':
				cell.setFlagged(true)
			}
		}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	return &snapshot, nil
}
