package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const lossLayout = `
	O#######
	########
	##O##O##
	#######O
	#O##O###
	########
	##O#O#O#
	####O###
`

func TestStartSession(t *testing.T) {
	engine, _ := newTestEngine(t)

	session, err := engine.StartSession("easy")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if session.Difficulty() != Easy {
		t.Errorf("expected %v, got %v", Easy, session.Difficulty())
	}
	if session.Board().Size() != 8 || session.Board().NumMines() != 10 {
		t.Errorf("expected an 8x8 board with 10 mines, got %dx%d with %d",
			session.Board().Size(), session.Board().Size(), session.Board().NumMines())
	}
	if session.Phase() != Idle || session.Score() != 0 || session.Elapsed() != 0 {
		t.Errorf("expected a fresh idle session, got %v/%d/%d", session.Phase(), session.Score(), session.Elapsed())
	}

	if _, err := engine.StartSession("Impossible"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestSessionLoss(t *testing.T) {
	session, engine, recorder := sessionFromLayout(t, lossLayout)

	if err := session.Reveal(63); err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}
	if session.Phase() != Running || session.Score() != 1 {
		t.Fatalf("expected running with 1 point, got %v with %d", session.Phase(), session.Score())
	}

	if err := session.Reveal(0); err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}
	if session.Phase() != Lost {
		t.Fatalf("expected lost, got %v", session.Phase())
	}
	if session.Score() != 1 {
		t.Errorf("expected the score to stay at 1, got %d", session.Score())
	}

	mines := 0
	for _, cell := range session.Board().Cells() {
		if cell.IsMine() {
			mines++
			if !cell.IsRevealed() {
				t.Errorf("%v: expected mine to be revealed after a loss", cell)
			}
		}
	}
	if mines != 10 {
		t.Errorf("expected 10 mines, got %d", mines)
	}

	if len(recorder.results) != 1 || recorder.results[0] != (recordedResult{"Easy", 1, false}) {
		t.Errorf("expected a single Easy loss with 1 point, got %+v", recorder.results)
	}
	if engine.Wins() != 0 {
		t.Errorf("expected no wins, got %d", engine.Wins())
	}

	t.Run("terminal session ignores input", func(t *testing.T) {
		before := session.Board().Layout()
		for _, index := range []int{1, 9, 1000, -1} {
			if err := session.Reveal(index); err != nil {
				t.Errorf("Reveal(%d) on a lost session: %v", index, err)
			}
			if err := session.ToggleFlag(index); err != nil {
				t.Errorf("ToggleFlag(%d) on a lost session: %v", index, err)
			}
		}
		for i := 0; i < 30; i++ {
			session.Tick()
		}

		if session.Board().Layout() != before {
			t.Error("board changed after the session was lost")
		}
		if session.Score() != 1 || session.Elapsed() != 0 || session.Phase() != Lost {
			t.Errorf("session changed after it was lost: %v/%d/%d", session.Phase(), session.Score(), session.Elapsed())
		}
		if len(recorder.results) != 1 {
			t.Errorf("expected the loss to be recorded once, got %+v", recorder.results)
		}
	})
}

func TestSessionWinInOneReveal(t *testing.T) {
	session, engine, recorder := sessionFromLayout(t, `
		####
		####
		####
		###O
	`)

	if err := session.Reveal(5); err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}

	if session.Phase() != Won {
		t.Fatalf("expected won, got %v", session.Phase())
	}
	if session.Score() != 15+10 {
		t.Errorf("expected 15 revealed plus a 10 point bonus, got %d", session.Score())
	}
	if engine.Wins() != 1 {
		t.Errorf("expected 1 win, got %d", engine.Wins())
	}
	if len(recorder.results) != 1 || !recorder.results[0].won {
		t.Errorf("expected a single win notification, got %+v", recorder.results)
	}
}

func TestSessionWinInSteps(t *testing.T) {
	session, engine, _ := sessionFromLayout(t, `
		##O##
		##O##
		##O##
		##O##
		##O##
	`)

	session.Reveal(5)
	if session.Phase() != Running || session.Score() != 10 {
		t.Fatalf("expected running with 10 points, got %v with %d", session.Phase(), session.Score())
	}

	session.Reveal(5)
	session.Reveal(6)
	if session.Score() != 10 {
		t.Errorf("revealing revealed cells changed the score to %d", session.Score())
	}

	session.Reveal(4)
	if session.Phase() != Won {
		t.Fatalf("expected won, got %v", session.Phase())
	}
	if session.Score() != 20+5*10 {
		t.Errorf("expected 70 points, got %d", session.Score())
	}

	next, err := engine.NewSession(session.Difficulty())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if next.Phase() != Idle || next.Score() != 0 {
		t.Errorf("expected a fresh session, got %v with %d", next.Phase(), next.Score())
	}
	if engine.Wins() != 1 {
		t.Errorf("expected the win count to carry over, got %d", engine.Wins())
	}
}

func TestSessionTick(t *testing.T) {
	session, _, _ := sessionFromLayout(t, lossLayout)

	session.Tick()
	if session.Elapsed() != 0 {
		t.Errorf("idle session counted a tick")
	}

	session.ToggleFlag(10)
	if session.Phase() != Running {
		t.Fatalf("expected flagging to start the session, got %v", session.Phase())
	}

	for i := 1; i <= 14; i++ {
		session.Tick()
	}
	if session.Score() != 0 {
		t.Errorf("expected no penalty before the 15th tick, got %d", session.Score())
	}

	session.Tick()
	if session.Score() != -1 || session.Elapsed() != 15 {
		t.Errorf("expected -1 point after 15 ticks, got %d after %d", session.Score(), session.Elapsed())
	}

	for i := 0; i < 15; i++ {
		session.Tick()
	}
	if session.Score() != -2 {
		t.Errorf("expected -2 points after 30 ticks, got %d", session.Score())
	}

	session.Reveal(0)
	session.Tick()
	if session.Elapsed() != 30 || session.Score() != -2 {
		t.Errorf("lost session kept counting: %d ticks, %d points", session.Elapsed(), session.Score())
	}
}

func TestSessionToggleFlag(t *testing.T) {
	session, _, _ := sessionFromLayout(t, lossLayout)

	if err := session.ToggleFlag(0); err != nil {
		t.Fatalf("ToggleFlag failed: %v", err)
	}
	if !session.Board().Cell(0).IsFlagged() || session.MinesLeft() != 9 {
		t.Errorf("expected a flag and 9 mines left, got %v and %d", session.Board().Cell(0).IsFlagged(), session.MinesLeft())
	}

	session.ToggleFlag(0)
	if session.Board().Cell(0).IsFlagged() || session.MinesLeft() != 10 {
		t.Error("expected the flag to be removed")
	}

	session.ToggleFlag(63)
	session.Reveal(63)
	if cell := session.Board().Cell(63); !cell.IsRevealed() || cell.IsFlagged() {
		t.Error("expected revealing a flagged cell to clear its flag")
	}
	session.ToggleFlag(63)
	if session.Board().Cell(63).IsFlagged() {
		t.Error("revealed cell was flagged")
	}

	if err := session.ToggleFlag(64); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := session.Reveal(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestSessionChord(t *testing.T) {
	layout := `
		O##
		###
		###
	`

	t.Run("correct flags", func(t *testing.T) {
		session, _, _ := sessionFromLayout(t, layout)
		session.Reveal(4)
		session.Apply(CellAction{Index: 0, Action: RightClick})
		if err := session.Apply(CellAction{Index: 4, Action: MiddleClick}); err != nil {
			t.Fatalf("Chord failed: %v", err)
		}
		if session.Phase() != Won || session.Score() != 8+10 {
			t.Errorf("expected a win with 18 points, got %v with %d", session.Phase(), session.Score())
		}
	})

	t.Run("wrong flags", func(t *testing.T) {
		session, _, _ := sessionFromLayout(t, layout)
		session.Reveal(4)
		session.ToggleFlag(1)
		session.Chord(4)
		if session.Phase() != Lost {
			t.Errorf("expected a loss, got %v", session.Phase())
		}
	})

	t.Run("missing flags", func(t *testing.T) {
		session, _, _ := sessionFromLayout(t, layout)
		session.Reveal(4)
		session.Chord(4)
		if session.Phase() != Running || session.Score() != 1 {
			t.Errorf("expected nothing to happen, got %v with %d", session.Phase(), session.Score())
		}
	})
}

func TestSessionSavesSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")

	config := NewGameConfig()
	config.Logger = quietLogger()
	config.SavedSnapshotsDir = dir
	engine := NewEngine(config)

	board := mustLayout(t, lossLayout)
	session := engine.SessionFromBoard(Easy, board)
	session.Reveal(0)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "_loss.yaml") {
		t.Fatalf("expected a single loss snapshot, got %v", entries)
	}

	in, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	snapshot, err := LoadSnapshot(string(in))
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	replay, err := snapshot.CreateBoard(true)
	if err != nil {
		t.Fatalf("CreateBoard failed: %v", err)
	}
	if replay.Layout() != mustLayout(t, lossLayout).Layout() {
		t.Errorf("replayed board differs:\n%s", replay.Layout())
	}
}
