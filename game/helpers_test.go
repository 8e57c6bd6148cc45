package game

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type recordedResult struct {
	difficulty string
	score      int
	won        bool
}

type fakeRecorder struct {
	results []recordedResult
}

func (recorder *fakeRecorder) RecordLoss(difficulty string, score int) {
	recorder.results = append(recorder.results, recordedResult{difficulty, score, false})
}

func (recorder *fakeRecorder) RecordWin(difficulty string, score int) {
	recorder.results = append(recorder.results, recordedResult{difficulty, score, true})
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine(t *testing.T) (*Engine, *fakeRecorder) {
	t.Helper()

	recorder := &fakeRecorder{}
	config := NewGameConfig()
	config.Seed = 42
	config.Results = recorder
	config.Logger = quietLogger()
	return NewEngine(config), recorder
}

func mustLayout(t *testing.T, layout string) *Board {
	t.Helper()

	board, err := BoardFromLayout(layout)
	if err != nil {
		t.Fatalf("BoardFromLayout failed: %v", err)
	}
	return board
}

func sessionFromLayout(t *testing.T, layout string) (*Session, *Engine, *fakeRecorder) {
	t.Helper()

	engine, recorder := newTestEngine(t)
	board := mustLayout(t, layout)
	difficulty := DifficultyFor(board.Size(), board.NumMines())
	return engine.SessionFromBoard(difficulty, board), engine, recorder
}

// countAdjacentMines counts mines around (x, y) without using the board's
// own neighbor iteration
func countAdjacentMines(board *Board, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if neighbor := board.CellAt(x+dx, y+dy); neighbor != nil && neighbor.IsMine() {
				count++
			}
		}
	}
	return count
}
