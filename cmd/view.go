package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/scoreboard"
)

func cellGlyph(cell *game.Cell) byte {
	switch {
	case cell.IsRevealed() && cell.IsMine():
		return '*'
	case cell.IsRevealed() && cell.NumMines() > 0:
		return byte('0' + cell.NumMines())
	case cell.IsRevealed():
		return '.'
	case cell.IsFlagged():
		return 'F'
	default:
		return '#'
	}
}

// renderBoard draws the board with column numbers above and row numbers to
// the left, both modulo 10
func renderBoard(board *game.Board) string {
	var out strings.Builder

	out.WriteString("   ")
	for x := 0; x < board.Size(); x++ {
		fmt.Fprintf(&out, "%d", x%10)
	}
	out.WriteByte('\n')

	for y := 0; y < board.Size(); y++ {
		fmt.Fprintf(&out, "%2d ", y%10)
		for x := 0; x < board.Size(); x++ {
			out.WriteByte(cellGlyph(board.CellAt(x, y)))
		}
		out.WriteByte('\n')
	}

	return out.String()
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func renderSession(out io.Writer, session *game.Session, wins int) {
	fmt.Fprintf(out, "%s  Wins: %d  Time: %s  Points: %d  Mines: %03d\n",
		session.Difficulty().Name, wins, formatElapsed(session.Elapsed()), session.Score(), session.MinesLeft())
	fmt.Fprint(out, renderBoard(session.Board()))

	switch session.Phase() {
	case game.Won:
		fmt.Fprintln(out, "You won!")
	case game.Lost:
		fmt.Fprintln(out, "Game over.")
	}
}

func renderScores(out io.Writer, difficulty string, entries []scoreboard.Entry) {
	fmt.Fprintf(out, "Leaderboard (%s)\n", difficulty)
	if len(entries) == 0 {
		fmt.Fprintln(out, "  no scores yet")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%3d. %s - %d pts\n", i+1, entry.Name, entry.Score)
	}
}
