package random

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweeper/game"
)

func TestDirectorPlaysToTheEnd(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := game.NewGameConfig()
	config.Seed = 99
	config.Logger = logger
	engine := game.NewEngine(config)

	for round := 0; round < 10; round++ {
		session, err := engine.StartSession("Easy")
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		director := New(rand.New(rand.NewSource(int64(round))))

		for moves := 0; !session.Phase().IsTerminal(); moves++ {
			if moves > session.Board().NumCells() {
				t.Fatalf("round %d: session did not end after %d moves", round, moves)
			}

			action, ok := director.Next(session)
			if !ok {
				t.Fatalf("round %d: director gave up on a %v session", round, session.Phase())
			}
			cell := session.Board().Cell(action.Index)
			if action.Action != game.Click || cell.IsRevealed() || cell.IsFlagged() {
				t.Fatalf("round %d: unexpected action %+v on %v", round, action, cell)
			}
			if err := session.Apply(action); err != nil {
				t.Fatalf("round %d: Apply failed: %v", round, err)
			}
		}

		if _, ok := director.Next(session); ok {
			t.Errorf("round %d: director acted on a finished session", round)
		}
	}
}
